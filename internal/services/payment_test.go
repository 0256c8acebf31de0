package service_test

import (
	"context"
	"testing"

	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/gildedthread/storefront-api/internal/repositories/mocks"
	service "github.com/gildedthread/storefront-api/internal/services"
	serviceMocks "github.com/gildedthread/storefront-api/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_ConfirmOrderPayment(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Full Settlement Path", func(t *testing.T) {

		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartSessionRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)
		mockCoupons := serviceMocks.NewMockCouponService(t)

		paymentService := service.NewPaymentService(mockOrderRepo, mockCartRepo, mockInventoryRepo, mockCoupons)

		orderID := uuid.New()
		productID := uuid.New()
		inventoryID := uuid.New()
		code := "SPRING10"
		token := "cart-token"

		order := &models.Order{
			ID:         orderID,
			Status:     models.OrderStatusPending,
			CouponCode: &code,
		}

		record := &models.InventoryRecord{ID: inventoryID, ProductID: productID, QuantityTotal: 10, TrackInventory: true}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateStatus", ctx, orderID, models.OrderStatusPaid).Return(nil).Once()
		mockCoupons.On("MarkRedeemed", ctx, code).Return(nil).Once()
		mockCartRepo.On("LinkToOrder", ctx, token, orderID).Return(nil).Once()
		mockInventoryRepo.On("GetByProductVariant", ctx, productID, (*string)(nil)).Return(record, nil).Once()
		mockInventoryRepo.On("Adjust", ctx, inventoryID, -2, models.MovementOrder, (*string)(nil)).
			Return(record, &models.StockMovement{}, nil).Once()

		err := paymentService.ConfirmOrderPayment(ctx, orderID, &token, []models.OrderLine{
			{ProductID: productID, Quantity: 2},
		})

		require.NoError(t, err)
		mockOrderRepo.AssertExpectations(t)
		mockCartRepo.AssertExpectations(t)
		mockInventoryRepo.AssertExpectations(t)
	})

	t.Run("Success - Replayed Delivery Is A No-Op", func(t *testing.T) {

		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartSessionRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)
		mockCoupons := serviceMocks.NewMockCouponService(t)

		paymentService := service.NewPaymentService(mockOrderRepo, mockCartRepo, mockInventoryRepo, mockCoupons)

		orderID := uuid.New()

		order := &models.Order{ID: orderID, Status: models.OrderStatusPaid}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		err := paymentService.ConfirmOrderPayment(ctx, orderID, nil, nil)

		require.NoError(t, err)
		mockOrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Untracked Inventory Is Skipped", func(t *testing.T) {

		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartSessionRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)
		mockCoupons := serviceMocks.NewMockCouponService(t)

		paymentService := service.NewPaymentService(mockOrderRepo, mockCartRepo, mockInventoryRepo, mockCoupons)

		orderID := uuid.New()
		productID := uuid.New()

		order := &models.Order{ID: orderID, Status: models.OrderStatusPending}
		record := &models.InventoryRecord{ID: uuid.New(), ProductID: productID, TrackInventory: false}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateStatus", ctx, orderID, models.OrderStatusPaid).Return(nil).Once()
		mockInventoryRepo.On("GetByProductVariant", ctx, productID, (*string)(nil)).Return(record, nil).Once()

		err := paymentService.ConfirmOrderPayment(ctx, orderID, nil, []models.OrderLine{
			{ProductID: productID, Quantity: 1},
		})

		require.NoError(t, err)
		mockInventoryRepo.AssertNotCalled(t, "Adjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Oversell Is Logged Not Fatal", func(t *testing.T) {

		mockOrderRepo := new(mocks.OrderRepository)
		mockCartRepo := new(mocks.CartSessionRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)
		mockCoupons := serviceMocks.NewMockCouponService(t)

		paymentService := service.NewPaymentService(mockOrderRepo, mockCartRepo, mockInventoryRepo, mockCoupons)

		orderID := uuid.New()
		productID := uuid.New()
		inventoryID := uuid.New()

		order := &models.Order{ID: orderID, Status: models.OrderStatusPending}
		record := &models.InventoryRecord{ID: inventoryID, ProductID: productID, QuantityTotal: 1, TrackInventory: true}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateStatus", ctx, orderID, models.OrderStatusPaid).Return(nil).Once()
		mockInventoryRepo.On("GetByProductVariant", ctx, productID, (*string)(nil)).Return(record, nil).Once()
		mockInventoryRepo.On("Adjust", ctx, inventoryID, -3, models.MovementOrder, (*string)(nil)).
			Return(nil, nil, repository.ErrInsufficientStock).Once()

		err := paymentService.ConfirmOrderPayment(ctx, orderID, nil, []models.OrderLine{
			{ProductID: productID, Quantity: 3},
		})

		// The money already moved; stock bookkeeping failures must not bounce
		// the webhook.
		assert.NoError(t, err)
	})
}
