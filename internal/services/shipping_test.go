package service_test

import (
	"context"
	"testing"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/repositories/mocks"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShippingService_DeleteZone(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Unreferenced Zone Deleted", func(t *testing.T) {

		mockRepo := new(mocks.ShippingRepository)
		shippingService := service.NewShippingService(mockRepo)

		id := uuid.New()

		mockRepo.On("CountOrdersForZone", ctx, id).Return(0, nil).Once()
		mockRepo.On("DeleteZone", ctx, id).Return(nil).Once()

		err := shippingService.DeleteZone(ctx, id)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Referenced Zone Is Protected", func(t *testing.T) {

		mockRepo := new(mocks.ShippingRepository)
		shippingService := service.NewShippingService(mockRepo)

		id := uuid.New()

		mockRepo.On("CountOrdersForZone", ctx, id).Return(12, nil).Once()

		err := shippingService.DeleteZone(ctx, id)

		assertErrorCode(t, err, appErrors.ErrCodeConflict)
		mockRepo.AssertNotCalled(t, "DeleteZone", mock.Anything, mock.Anything)
	})
}

func TestShippingService_UpdateMethod(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Partial Update Keeps Unset Fields", func(t *testing.T) {

		mockRepo := new(mocks.ShippingRepository)
		shippingService := service.NewShippingService(mockRepo)

		id := uuid.New()
		newRate := 4.50

		existing := &models.ShippingMethod{
			ID:              id,
			Name:            "Tracked letter",
			Rate:            6.00,
			MinDeliveryDays: 2,
			MaxDeliveryDays: 5,
			Active:          true,
		}

		mockRepo.On("GetMethodByID", ctx, id).Return(existing, nil).Once()
		mockRepo.On("UpdateMethod", ctx, mock.MatchedBy(func(m *models.ShippingMethod) bool {
			return m.Rate == 4.50 && m.Name == "Tracked letter"
		})).Return(nil).Once()

		method, err := shippingService.UpdateMethod(ctx, id, &models.UpdateShippingMethodRequest{
			Rate: &newRate,
		})

		require.NoError(t, err)
		assert.Equal(t, 4.50, method.Rate)
		assert.Equal(t, "Tracked letter", method.Name)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Delivery Window Cannot Invert", func(t *testing.T) {

		mockRepo := new(mocks.ShippingRepository)
		shippingService := service.NewShippingService(mockRepo)

		id := uuid.New()
		newMin := 9

		existing := &models.ShippingMethod{
			ID:              id,
			MinDeliveryDays: 2,
			MaxDeliveryDays: 5,
		}

		mockRepo.On("GetMethodByID", ctx, id).Return(existing, nil).Once()

		_, err := shippingService.UpdateMethod(ctx, id, &models.UpdateShippingMethodRequest{
			MinDeliveryDays: &newMin,
		})

		assertErrorCode(t, err, appErrors.ErrCodeBadRequest)
		mockRepo.AssertNotCalled(t, "UpdateMethod", mock.Anything, mock.Anything)
	})
}
