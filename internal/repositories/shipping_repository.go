package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ShippingRepository interface {
	CreateZone(ctx context.Context, zone *models.ShippingZone) error
	ListZones(ctx context.Context) ([]models.ShippingZone, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
	CountOrdersForZone(ctx context.Context, zoneID uuid.UUID) (int, error)

	CreateMethod(ctx context.Context, method *models.ShippingMethod) error
	GetMethodByID(ctx context.Context, id uuid.UUID) (*models.ShippingMethod, error)
	ListMethodsForZone(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingMethod, error)
	UpdateMethod(ctx context.Context, method *models.ShippingMethod) error
	DeleteMethod(ctx context.Context, id uuid.UUID) error
	CountOrdersForMethod(ctx context.Context, methodID uuid.UUID) (int, error)
}

type shippingRepository struct {
	DB *sql.DB
}

func NewShippingRepo(db *sql.DB) ShippingRepository {
	return &shippingRepository{DB: db}
}

func (r *shippingRepository) CreateZone(ctx context.Context, zone *models.ShippingZone) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO shipping_zones (id, name, countries, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, zone.ID, zone.Name, pq.Array(zone.Countries)).
		Scan(&zone.CreatedAt, &zone.UpdatedAt)
}

func (r *shippingRepository) ListZones(ctx context.Context) ([]models.ShippingZone, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, name, countries, created_at, updated_at
		FROM shipping_zones
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing shipping zones: %w", err)
	}
	defer rows.Close()

	var zones []models.ShippingZone

	for rows.Next() {
		var zone models.ShippingZone
		if err := rows.Scan(&zone.ID, &zone.Name, pq.Array(&zone.Countries), &zone.CreatedAt, &zone.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning shipping zone: %w", err)
		}

		zones = append(zones, zone)
	}

	return zones, rows.Err()
}

func (r *shippingRepository) DeleteZone(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM shipping_zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shipping zone: %w", err)
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

func (r *shippingRepository) CountOrdersForZone(ctx context.Context, zoneID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT COUNT(*)
		FROM orders
		WHERE shipping_method_id IN (SELECT id FROM shipping_methods WHERE zone_id = $1)
	`, zoneID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting orders for shipping zone: %w", err)
	}

	return count, nil
}

func (r *shippingRepository) CreateMethod(ctx context.Context, method *models.ShippingMethod) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO shipping_methods (id, zone_id, name, rate, min_delivery_days, max_delivery_days, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		RETURNING active, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		method.ID, method.ZoneID, method.Name, method.Rate, method.MinDeliveryDays, method.MaxDeliveryDays,
	).Scan(&method.Active, &method.CreatedAt, &method.UpdatedAt)
}

func (r *shippingRepository) GetMethodByID(ctx context.Context, id uuid.UUID) (*models.ShippingMethod, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	method := &models.ShippingMethod{}

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT id, zone_id, name, rate, min_delivery_days, max_delivery_days, active, created_at, updated_at
		FROM shipping_methods
		WHERE id = $1
	`, id).Scan(
		&method.ID, &method.ZoneID, &method.Name, &method.Rate, &method.MinDeliveryDays,
		&method.MaxDeliveryDays, &method.Active, &method.CreatedAt, &method.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying shipping method: %w", err)
	}

	return method, nil
}

func (r *shippingRepository) ListMethodsForZone(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingMethod, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, zone_id, name, rate, min_delivery_days, max_delivery_days, active, created_at, updated_at
		FROM shipping_methods
		WHERE zone_id = $1
		ORDER BY rate
	`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("listing shipping methods: %w", err)
	}
	defer rows.Close()

	var methods []models.ShippingMethod

	for rows.Next() {
		var m models.ShippingMethod
		if err := rows.Scan(&m.ID, &m.ZoneID, &m.Name, &m.Rate, &m.MinDeliveryDays, &m.MaxDeliveryDays, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning shipping method: %w", err)
		}

		methods = append(methods, m)
	}

	return methods, rows.Err()
}

func (r *shippingRepository) UpdateMethod(ctx context.Context, method *models.ShippingMethod) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE shipping_methods
		SET name = $1, rate = $2, min_delivery_days = $3, max_delivery_days = $4, active = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		method.Name, method.Rate, method.MinDeliveryDays, method.MaxDeliveryDays, method.Active, time.Now(), method.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shipping method: %w", err)
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

func (r *shippingRepository) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM shipping_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shipping method: %w", err)
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

func (r *shippingRepository) CountOrdersForMethod(ctx context.Context, methodID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx,
		`SELECT COUNT(*) FROM orders WHERE shipping_method_id = $1`, methodID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting orders for shipping method: %w", err)
	}

	return count, nil
}
