package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CartSessionRepository interface {
	CreateSession(ctx context.Context, session *models.CartSession) error
	GetByToken(ctx context.Context, token string) (*models.CartSession, error)
	// GetLatestByCustomer returns the customer's most recently updated
	// session that has not been converted to an order.
	GetLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*models.CartSession, error)
	UpdateSession(ctx context.Context, session *models.CartSession) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error
	LinkToOrder(ctx context.Context, token string, orderID uuid.UUID) error
}

type cartSessionRepository struct {
	DB *sql.DB
}

func NewCartSessionRepo(db *sql.DB) CartSessionRepository {
	return &cartSessionRepository{DB: db}
}

const cartSessionColumns = `id, session_token, customer_id, items, subtotal,
		last_activity_at, abandoned_at, recovered_at, order_id, created_at, updated_at`

func (r *cartSessionRepository) CreateSession(ctx context.Context, session *models.CartSession) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(session.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	query := `
		INSERT INTO cart_sessions (id, session_token, customer_id, items, subtotal, last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), NOW())
		RETURNING id, last_activity_at, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		session.ID, session.SessionToken, session.CustomerID, itemsJSON, session.Subtotal,
	).Scan(&session.ID, &session.LastActivityAt, &session.CreatedAt, &session.UpdatedAt)
}

func (r *cartSessionRepository) GetByToken(ctx context.Context, token string) (*models.CartSession, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + cartSessionColumns + `
		FROM cart_sessions
		WHERE session_token = $1
	`

	return scanCartSession(r.DB.QueryRowContext(dbCtx, query, token))
}

func (r *cartSessionRepository) GetLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*models.CartSession, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + cartSessionColumns + `
		FROM cart_sessions
		WHERE customer_id = $1 AND order_id IS NULL
		ORDER BY updated_at DESC
		LIMIT 1
	`

	return scanCartSession(r.DB.QueryRowContext(dbCtx, query, customerID))
}

func (r *cartSessionRepository) UpdateSession(ctx context.Context, session *models.CartSession) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(session.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	query := `
		UPDATE cart_sessions
		SET items = $1, subtotal = $2, customer_id = $3, last_activity_at = NOW(),
			abandoned_at = NULL, recovered_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		itemsJSON, session.Subtotal, session.CustomerID, session.RecoveredAt, session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update the cart session: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *cartSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_sessions WHERE session_token = $1 AND order_id IS NULL`, token)
	if err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}

	return nil
}

func (r *cartSessionRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_sessions WHERE customer_id = $1 AND order_id IS NULL`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete cart sessions: %w", err)
	}

	return nil
}

func (r *cartSessionRepository) LinkToOrder(ctx context.Context, token string, orderID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_sessions
		SET order_id = $1, updated_at = NOW()
		WHERE session_token = $2 AND order_id IS NULL
	`

	result, err := r.DB.ExecContext(dbCtx, query, orderID, token)
	if err != nil {
		return fmt.Errorf("failed to link cart session to order: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanCartSession(row rowScanner) (*models.CartSession, error) {
	session := &models.CartSession{}

	var itemsJSON []byte

	err := row.Scan(
		&session.ID, &session.SessionToken, &session.CustomerID, &itemsJSON, &session.Subtotal,
		&session.LastActivityAt, &session.AbandonedAt, &session.RecoveredAt, &session.OrderID,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying cart session: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &session.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return session, nil
}
