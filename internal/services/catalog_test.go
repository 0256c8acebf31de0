package service_test

import (
	"context"
	"testing"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/repositories/mocks"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_HandleCMSEvent(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Created Product Is Upserted And Provisioned Per Variant", func(t *testing.T) {

		mockProductRepo := new(mocks.ProductRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)

		catalogService := service.NewCatalogService(mockProductRepo, mockInventoryRepo)

		mockProductRepo.On("UpsertByCMSID", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.CMSID == "cms-77" && p.Name == "Moonstone Pendant"
		})).Return(nil).Once()
		mockInventoryRepo.On("ProvisionForProduct", ctx, mock.Anything, mock.MatchedBy(func(v *string) bool {
			return v != nil && *v == "gold"
		})).Return(nil).Once()
		mockInventoryRepo.On("ProvisionForProduct", ctx, mock.Anything, mock.MatchedBy(func(v *string) bool {
			return v != nil && *v == "silver"
		})).Return(nil).Once()

		err := catalogService.HandleCMSEvent(ctx, &models.CMSWebhookEvent{
			Event: models.CMSEventProductCreated,
			Product: models.CMSProductPayload{
				CMSID:    "cms-77",
				Name:     "Moonstone Pendant",
				Price:    64.00,
				Variants: []string{"gold", "silver"},
			},
		})

		require.NoError(t, err)
		mockProductRepo.AssertExpectations(t)
		mockInventoryRepo.AssertExpectations(t)
	})

	t.Run("Success - Description Markup Is Sanitized", func(t *testing.T) {

		mockProductRepo := new(mocks.ProductRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)

		catalogService := service.NewCatalogService(mockProductRepo, mockInventoryRepo)

		mockProductRepo.On("UpsertByCMSID", ctx, mock.MatchedBy(func(p *models.Product) bool {
			return p.Description == "<em>Hand forged</em>"
		})).Return(nil).Once()
		mockInventoryRepo.On("ProvisionForProduct", ctx, mock.Anything, (*string)(nil)).Return(nil).Once()

		err := catalogService.HandleCMSEvent(ctx, &models.CMSWebhookEvent{
			Event: models.CMSEventProductUpdated,
			Product: models.CMSProductPayload{
				CMSID:       "cms-78",
				Description: `<em>Hand forged</em><script>alert(1)</script>`,
			},
		})

		require.NoError(t, err)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Success - Delete For Unknown Product Is Tolerated", func(t *testing.T) {

		mockProductRepo := new(mocks.ProductRepository)
		mockInventoryRepo := new(mocks.InventoryRepository)

		catalogService := service.NewCatalogService(mockProductRepo, mockInventoryRepo)

		mockProductRepo.On("DeactivateByCMSID", ctx, "cms-gone").
			Return(assert.AnError).Once()

		err := catalogService.HandleCMSEvent(ctx, &models.CMSWebhookEvent{
			Event:   models.CMSEventProductDeleted,
			Product: models.CMSProductPayload{CMSID: "cms-gone"},
		})

		assert.NoError(t, err)
	})

	t.Run("Failure - Unknown Event Type", func(t *testing.T) {

		catalogService := service.NewCatalogService(new(mocks.ProductRepository), new(mocks.InventoryRepository))

		err := catalogService.HandleCMSEvent(ctx, &models.CMSWebhookEvent{
			Event:   "product.archived",
			Product: models.CMSProductPayload{CMSID: "cms-1"},
		})

		assertErrorCode(t, err, appErrors.ErrCodeBadRequest)
	})
}
