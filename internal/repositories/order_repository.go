package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepository interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	// CountCouponUsesByCustomer counts the customer's orders that redeemed
	// the coupon and reached a paid-like state.
	CountCouponUsesByCustomer(ctx context.Context, code string, customerID uuid.UUID) (int, error)
	SalesSummary(ctx context.Context, from, to time.Time) (*models.SalesSummary, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT id, customer_id, status, total_amount, coupon_code, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&order.ID, &order.CustomerID, &order.Status, &order.TotalAmount,
		&order.CouponCode, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
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

func (r *orderRepository) CountCouponUsesByCustomer(ctx context.Context, code string, customerID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	statuses := make([]string, 0, len(models.PaidLikeStatuses))
	for _, s := range models.PaidLikeStatuses {
		statuses = append(statuses, string(s))
	}

	var count int

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT COUNT(*)
		FROM orders
		WHERE coupon_code = $1 AND customer_id = $2 AND status = ANY($3)
	`, strings.ToUpper(code), customerID, pq.Array(statuses)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting coupon uses: %w", err)
	}

	return count, nil
}

func (r *orderRepository) SalesSummary(ctx context.Context, from, to time.Time) (*models.SalesSummary, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	statuses := make([]string, 0, len(models.PaidLikeStatuses))
	for _, s := range models.PaidLikeStatuses {
		statuses = append(statuses, string(s))
	}

	summary := &models.SalesSummary{From: from, To: to}

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COUNT(coupon_code)
		FROM orders
		WHERE status = ANY($1) AND created_at >= $2 AND created_at < $3
	`, pq.Array(statuses), from, to).Scan(&summary.OrderCount, &summary.Revenue, &summary.CouponRedemptions)
	if err != nil {
		return nil, fmt.Errorf("aggregating orders: %w", err)
	}

	if summary.OrderCount > 0 {
		summary.AverageOrderValue = utils.RoundCents(summary.Revenue / float64(summary.OrderCount))
	}

	err = r.DB.QueryRowContext(dbCtx, `
		SELECT
			COUNT(*) FILTER (WHERE abandoned_at IS NOT NULL AND recovered_at IS NULL),
			COUNT(*) FILTER (WHERE recovered_at IS NOT NULL)
		FROM cart_sessions
		WHERE last_activity_at >= $1 AND last_activity_at < $2
	`, from, to).Scan(&summary.AbandonedCarts, &summary.RecoveredCarts)
	if err != nil {
		return nil, fmt.Errorf("aggregating cart sessions: %w", err)
	}

	return summary, nil
}
