package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type PaymentService interface {
	// ConfirmOrderPayment applies the side effects of a successful payment:
	// order marked paid, coupon redemption recorded, cart session frozen,
	// inventory decremented with ORDER movements.
	ConfirmOrderPayment(ctx context.Context, orderID uuid.UUID, sessionToken *string, lines []models.OrderLine) error
}

type paymentService struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartSessionRepository
	inventoryRepo repository.InventoryRepository
	coupons       CouponService
}

func NewPaymentService(orderRepo repository.OrderRepository, cartRepo repository.CartSessionRepository, inventoryRepo repository.InventoryRepository, coupons CouponService) PaymentService {
	return &paymentService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		inventoryRepo: inventoryRepo,
		coupons:       coupons,
	}
}

func (s *paymentService) ConfirmOrderPayment(ctx context.Context, orderID uuid.UUID, sessionToken *string, lines []models.OrderLine) error {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Order not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	// Replayed webhook deliveries arrive; a paid order is already settled.
	if order.Status != models.OrderStatusPending {
		slog.Info("Payment confirmation for non-pending order ignored",
			slog.String("orderId", orderID.String()),
			slog.String("status", string(order.Status)))

		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
		return appErrors.DatabaseError("Failed to mark order paid").WithError(err)
	}

	if order.CouponCode != nil {
		if err := s.coupons.MarkRedeemed(ctx, *order.CouponCode); err != nil {
			slog.Error("Failed to record coupon redemption",
				slog.String("orderId", orderID.String()),
				slog.String("code", *order.CouponCode),
				slog.Any("error", err))
		}
	}

	if sessionToken != nil {
		if err := s.cartRepo.LinkToOrder(ctx, *sessionToken, orderID); err != nil {
			slog.Warn("Failed to freeze cart session",
				slog.String("orderId", orderID.String()),
				slog.Any("error", err))
		}
	}

	for _, line := range lines {
		record, err := s.inventoryRepo.GetByProductVariant(ctx, line.ProductID, line.Variant)
		if err != nil {
			slog.Warn("No inventory record for order line",
				slog.String("productId", line.ProductID.String()),
				slog.Any("error", err))

			continue
		}

		if !record.TrackInventory {
			continue
		}

		_, _, err = s.inventoryRepo.Adjust(ctx, record.ID, -line.Quantity, models.MovementOrder, nil)
		if err != nil {
			// The sale already happened; an oversell is flagged for manual
			// correction rather than failing the webhook.
			slog.Error("Failed to apply order movement",
				slog.String("inventoryId", record.ID.String()),
				slog.Int("delta", -line.Quantity),
				slog.Any("error", err))
		}
	}

	return nil
}
