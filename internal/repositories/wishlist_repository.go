package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type WishlistRepository interface {
	// AddItem is idempotent on (customer_id, product_id).
	AddItem(ctx context.Context, item *models.WishlistItem) error
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.WishlistItem, error)
}

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepo(db *sql.DB) WishlistRepository {
	return &wishlistRepository{DB: db}
}

func (r *wishlistRepository) AddItem(ctx context.Context, item *models.WishlistItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO wishlist_items (id, customer_id, product_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (customer_id, product_id) DO NOTHING
	`

	if _, err := r.DB.ExecContext(dbCtx, query, item.ID, item.CustomerID, item.ProductID); err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM wishlist_items WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *wishlistRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.WishlistItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, customer_id, product_id, created_at
		FROM wishlist_items
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing wishlist items: %w", err)
	}
	defer rows.Close()

	var items []models.WishlistItem

	for rows.Next() {
		var item models.WishlistItem
		if err := rows.Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning wishlist item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
