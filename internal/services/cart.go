package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CartService interface {
	// SaveCart reconciles the client's full item list against the persisted
	// session. Callers debounce; each call is stateless and last-write-wins.
	SaveCart(ctx context.Context, customerID *uuid.UUID, req *models.SaveCartRequest) (*models.SaveCartResponse, error)
	GetCart(ctx context.Context, token string) (*models.CartSession, error)
	RecoverCart(ctx context.Context, token string) (*models.CartSession, error)
}

type cartService struct {
	repo repository.CartSessionRepository
}

func NewCartService(repo repository.CartSessionRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) SaveCart(ctx context.Context, customerID *uuid.UUID, req *models.SaveCartRequest) (*models.SaveCartResponse, error) {

	for _, item := range req.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return nil, appErrors.ValidationError("Cart items must have a positive quantity and a non-negative price")
		}
	}

	// An empty cart deletes the session entirely.
	if len(req.Items) == 0 {
		if req.SessionToken != nil {
			if err := s.repo.DeleteByToken(ctx, *req.SessionToken); err != nil {
				return nil, appErrors.DatabaseError("Failed to delete cart session").WithError(err)
			}
		} else if customerID != nil {
			if err := s.repo.DeleteByCustomer(ctx, *customerID); err != nil {
				return nil, appErrors.DatabaseError("Failed to delete cart session").WithError(err)
			}
		}

		return &models.SaveCartResponse{SessionToken: nil, Subtotal: 0}, nil
	}

	// The server never trusts a client-supplied subtotal.
	subtotal := calculateSubtotal(req.Items)

	session, err := s.resolveSession(ctx, req.SessionToken, customerID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		token, err := generateSessionToken()
		if err != nil {
			return nil, appErrors.InternalError("Failed to generate session token").WithError(err)
		}

		session = &models.CartSession{
			ID:           uuid.New(),
			SessionToken: token,
			CustomerID:   customerID,
			Items:        req.Items,
			Subtotal:     subtotal,
		}

		if err := s.repo.CreateSession(ctx, session); err != nil {
			return nil, appErrors.DatabaseError("Failed to create cart session").WithError(err)
		}

		return &models.SaveCartResponse{SessionToken: &session.SessionToken, Subtotal: subtotal}, nil
	}

	session.Items = req.Items
	session.Subtotal = subtotal

	if session.CustomerID == nil && customerID != nil {
		session.CustomerID = customerID
	}

	// A save against an abandoned session counts as a recovery.
	if session.AbandonedAt != nil && session.RecoveredAt == nil {
		now := time.Now()
		session.RecoveredAt = &now
	}

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart session").WithError(err)
	}

	return &models.SaveCartResponse{SessionToken: &session.SessionToken, Subtotal: subtotal}, nil
}

func (s *cartService) GetCart(ctx context.Context, token string) (*models.CartSession, error) {

	session, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart session not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load cart session").WithError(err)
	}

	return session, nil
}

func (s *cartService) RecoverCart(ctx context.Context, token string) (*models.CartSession, error) {

	session, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart session not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load cart session").WithError(err)
	}

	if session.OrderID != nil {
		return nil, appErrors.ConflictError("This cart has already been converted to an order")
	}

	return session, nil
}

// resolveSession finds the session to overwrite: by token first, then the
// customer's most recent unconverted session. A nil result means a new
// session must be created.
func (s *cartService) resolveSession(ctx context.Context, token *string, customerID *uuid.UUID) (*models.CartSession, error) {

	if token != nil {
		session, err := s.repo.GetByToken(ctx, *token)
		if err == nil {
			if session.OrderID != nil {
				// Frozen session: a new one gets created instead.
				return nil, nil
			}

			return session, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.DatabaseError("Failed to load cart session").WithError(err)
		}
	}

	if customerID != nil {
		session, err := s.repo.GetLatestByCustomer(ctx, *customerID)
		if err == nil {
			return session, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.DatabaseError("Failed to load cart session").WithError(err)
		}
	}

	return nil, nil
}

func calculateSubtotal(items []models.CartItem) float64 {

	var subtotal float64

	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return utils.RoundCents(subtotal)
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 24)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
