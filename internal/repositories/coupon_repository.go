package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *models.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListCoupons(ctx context.Context, page, pageSize int) ([]models.Coupon, int, error)
	DeactivateCoupon(ctx context.Context, id uuid.UUID) error
	// IncrementUsage bumps current_uses by one, guarded so the counter can
	// never pass max_uses. Returns sql.ErrNoRows when the guard rejects.
	IncrementUsage(ctx context.Context, code string) error
}

type couponRepository struct {
	DB *sql.DB
}

func NewCouponRepo(db *sql.DB) CouponRepository {
	return &couponRepository{DB: db}
}

const couponColumns = `id, code, description, discount_type, discount_value, min_order_value,
		max_discount_amount, max_uses, max_uses_per_user, valid_from, valid_until,
		product_ids, collection_ids, active, current_uses, created_at, updated_at`

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	productIDs, err := json.Marshal(coupon.ProductIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal product ids: %w", err)
	}

	collectionIDs, err := json.Marshal(coupon.CollectionIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal collection ids: %w", err)
	}

	query := `
		INSERT INTO coupons (id, code, description, discount_type, discount_value, min_order_value,
			max_discount_amount, max_uses, max_uses_per_user, valid_from, valid_until,
			product_ids, collection_ids, active, current_uses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE, 0, NOW(), NOW())
		RETURNING id, active, current_uses, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		coupon.ID, strings.ToUpper(coupon.Code), coupon.Description, coupon.DiscountType,
		coupon.DiscountValue, coupon.MinOrderValue, coupon.MaxDiscountAmount,
		coupon.MaxUses, coupon.MaxUsesPerUser, coupon.ValidFrom, coupon.ValidUntil,
		productIDs, collectionIDs,
	).Scan(&coupon.ID, &coupon.Active, &coupon.CurrentUses, &coupon.CreatedAt, &coupon.UpdatedAt)
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE code = $1
	`

	coupon, err := scanCoupon(r.DB.QueryRowContext(dbCtx, query, strings.ToUpper(code)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying coupon: %w", err)
	}

	return coupon, nil
}

func (r *couponRepository) ListCoupons(ctx context.Context, page, pageSize int) ([]models.Coupon, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM coupons`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting coupons: %w", err)
	}

	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("listing coupons: %w", err)
	}
	defer rows.Close()

	var coupons []models.Coupon

	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning coupon row: %w", err)
		}

		coupons = append(coupons, *coupon)
	}

	return coupons, total, rows.Err()
}

func (r *couponRepository) DeactivateCoupon(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE coupons
		SET active = FALSE, updated_at = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate coupon: %w", err)
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

func (r *couponRepository) IncrementUsage(ctx context.Context, code string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE coupons
		SET current_uses = current_uses + 1, updated_at = NOW()
		WHERE code = $1 AND (max_uses IS NULL OR current_uses < max_uses)
	`

	result, err := r.DB.ExecContext(dbCtx, query, strings.ToUpper(code))
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*models.Coupon, error) {
	coupon := &models.Coupon{}

	var productIDs, collectionIDs []byte

	err := row.Scan(
		&coupon.ID, &coupon.Code, &coupon.Description, &coupon.DiscountType,
		&coupon.DiscountValue, &coupon.MinOrderValue, &coupon.MaxDiscountAmount,
		&coupon.MaxUses, &coupon.MaxUsesPerUser, &coupon.ValidFrom, &coupon.ValidUntil,
		&productIDs, &collectionIDs, &coupon.Active, &coupon.CurrentUses,
		&coupon.CreatedAt, &coupon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(productIDs) > 0 {
		if err := json.Unmarshal(productIDs, &coupon.ProductIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product ids: %w", err)
		}
	}

	if len(collectionIDs) > 0 {
		if err := json.Unmarshal(collectionIDs, &coupon.CollectionIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal collection ids: %w", err)
		}
	}

	return coupon, nil
}
