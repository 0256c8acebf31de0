package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when an adjustment would drive the
// quantity below zero. The record is left untouched.
var ErrInsufficientStock = errors.New("insufficient stock")

type InventoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryRecord, error)
	GetByProductVariant(ctx context.Context, productID uuid.UUID, variant *string) (*models.InventoryRecord, error)
	// ProvisionForProduct inserts a zero-quantity record for a new
	// product/variant pair. Existing quantities are never overwritten.
	ProvisionForProduct(ctx context.Context, productID uuid.UUID, variant *string) error
	// Adjust applies a signed delta and appends the movement row in a
	// single transaction.
	Adjust(ctx context.Context, id uuid.UUID, delta int, movementType models.MovementType, reason *string) (*models.InventoryRecord, *models.StockMovement, error)
	ListMovements(ctx context.Context, inventoryID uuid.UUID, page, pageSize int) ([]models.StockMovement, int, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

const inventoryColumns = `id, product_id, variant, quantity_total, track_inventory, created_at, updated_at`

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryRecord, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE id = $1
	`

	return scanInventory(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *inventoryRepository) GetByProductVariant(ctx context.Context, productID uuid.UUID, variant *string) (*models.InventoryRecord, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE product_id = $1 AND variant IS NOT DISTINCT FROM $2
	`

	return scanInventory(r.DB.QueryRowContext(dbCtx, query, productID, variant))
}

func (r *inventoryRepository) ProvisionForProduct(ctx context.Context, productID uuid.UUID, variant *string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO inventory (id, product_id, variant, quantity_total, track_inventory, created_at, updated_at)
		VALUES ($1, $2, $3, 0, TRUE, NOW(), NOW())
		ON CONFLICT (product_id, variant) DO NOTHING
	`

	if _, err := r.DB.ExecContext(dbCtx, query, uuid.New(), productID, variant); err != nil {
		return fmt.Errorf("failed to provision inventory record: %w", err)
	}

	return nil
}

func (r *inventoryRepository) Adjust(ctx context.Context, id uuid.UUID, delta int, movementType models.MovementType, reason *string) (*models.InventoryRecord, *models.StockMovement, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	record := &models.InventoryRecord{}

	// Row lock serializes concurrent adjustments on the same record.
	err = tx.QueryRowContext(dbCtx, `
		SELECT `+inventoryColumns+`
		FROM inventory
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&record.ID, &record.ProductID, &record.Variant, &record.QuantityTotal,
		&record.TrackInventory, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, err
		}

		return nil, nil, fmt.Errorf("querying inventory record: %w", err)
	}

	newTotal := record.QuantityTotal + delta
	if newTotal < 0 {
		return nil, nil, ErrInsufficientStock
	}

	err = tx.QueryRowContext(dbCtx, `
		UPDATE inventory
		SET quantity_total = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`, newTotal, id).Scan(&record.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	record.QuantityTotal = newTotal

	movement := &models.StockMovement{
		ID:          uuid.New(),
		InventoryID: id,
		Type:        movementType,
		Quantity:    delta,
		Reason:      reason,
	}

	err = tx.QueryRowContext(dbCtx, `
		INSERT INTO stock_movements (id, inventory_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`, movement.ID, movement.InventoryID, movement.Type, movement.Quantity, movement.Reason).Scan(&movement.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append stock movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit adjustment: %w", err)
	}

	return record, movement, nil
}

func (r *inventoryRepository) ListMovements(ctx context.Context, inventoryID uuid.UUID, page, pageSize int) ([]models.StockMovement, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx,
		`SELECT COUNT(*) FROM stock_movements WHERE inventory_id = $1`, inventoryID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting stock movements: %w", err)
	}

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, inventory_id, type, quantity, reason, created_at
		FROM stock_movements
		WHERE inventory_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, inventoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("listing stock movements: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement

	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.Reason, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning stock movement: %w", err)
		}

		movements = append(movements, m)
	}

	return movements, total, rows.Err()
}

func scanInventory(row rowScanner) (*models.InventoryRecord, error) {
	record := &models.InventoryRecord{}

	err := row.Scan(
		&record.ID, &record.ProductID, &record.Variant, &record.QuantityTotal,
		&record.TrackInventory, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying inventory record: %w", err)
	}

	return record, nil
}
