package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type WishlistService interface {
	AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddWishlistItemRequest) (*models.WishlistItem, error)
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) error
	ListItems(ctx context.Context, customerID uuid.UUID) ([]models.WishlistItem, error)
}

type wishlistService struct {
	repo repository.WishlistRepository
}

func NewWishlistService(repo repository.WishlistRepository) WishlistService {
	return &wishlistService{repo: repo}
}

func (s *wishlistService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddWishlistItemRequest) (*models.WishlistItem, error) {

	item := &models.WishlistItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  req.ProductID,
	}

	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to add wishlist item").WithError(err)
	}

	return item, nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) error {

	if err := s.repo.RemoveItem(ctx, customerID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Wishlist item not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to remove wishlist item").WithError(err)
	}

	return nil
}

func (s *wishlistService) ListItems(ctx context.Context, customerID uuid.UUID) ([]models.WishlistItem, error) {

	items, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list wishlist items").WithError(err)
	}

	return items, nil
}
