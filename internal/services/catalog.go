package service

import (
	"context"
	"log/slog"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	// HandleCMSEvent applies a content change notification to the local
	// catalog projection and provisions inventory rows for new products.
	HandleCMSEvent(ctx context.Context, event *models.CMSWebhookEvent) error
}

type catalogService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	sanitizer     *bluemonday.Policy
}

func NewCatalogService(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) CatalogService {
	return &catalogService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		sanitizer:     bluemonday.UGCPolicy(),
	}
}

func (s *catalogService) HandleCMSEvent(ctx context.Context, event *models.CMSWebhookEvent) error {

	switch event.Event {
	case models.CMSEventProductCreated, models.CMSEventProductUpdated:
		return s.upsertProduct(ctx, &event.Product)
	case models.CMSEventProductDeleted:
		if err := s.productRepo.DeactivateByCMSID(ctx, event.Product.CMSID); err != nil {
			// Deleting a product the projection never saw is not an error
			// worth failing the webhook for.
			slog.Warn("CMS delete for unknown product", slog.String("cmsId", event.Product.CMSID))
		}

		return nil
	default:
		return appErrors.BadRequestError("Unknown CMS event: " + event.Event)
	}
}

func (s *catalogService) upsertProduct(ctx context.Context, payload *models.CMSProductPayload) error {

	product := &models.Product{
		CMSID:         payload.CMSID,
		Slug:          payload.Slug,
		Name:          payload.Name,
		Description:   s.sanitizer.Sanitize(payload.Description),
		Price:         payload.Price,
		CollectionIDs: payload.CollectionIDs,
	}

	if err := s.productRepo.UpsertByCMSID(ctx, product); err != nil {
		return appErrors.DatabaseError("Failed to upsert product").WithError(err)
	}

	// Provision inventory rows with quantity 0 and never touch existing
	// counts. The CMS in_stock flag is advisory only; real quantities come
	// from inventory adjustments.
	if len(payload.Variants) == 0 {
		if err := s.inventoryRepo.ProvisionForProduct(ctx, product.ID, nil); err != nil {
			return appErrors.DatabaseError("Failed to provision inventory").WithError(err)
		}

		return nil
	}

	for _, variant := range payload.Variants {
		v := variant
		if err := s.inventoryRepo.ProvisionForProduct(ctx, product.ID, &v); err != nil {
			return appErrors.DatabaseError("Failed to provision inventory").WithError(err)
		}
	}

	return nil
}
