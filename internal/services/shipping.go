package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type ShippingService interface {
	CreateZone(ctx context.Context, req *models.CreateShippingZoneRequest) (*models.ShippingZone, error)
	ListZones(ctx context.Context) ([]models.ShippingZone, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
	CreateMethod(ctx context.Context, req *models.CreateShippingMethodRequest) (*models.ShippingMethod, error)
	ListMethodsForZone(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingMethod, error)
	UpdateMethod(ctx context.Context, id uuid.UUID, req *models.UpdateShippingMethodRequest) (*models.ShippingMethod, error)
	DeleteMethod(ctx context.Context, id uuid.UUID) error
}

type shippingService struct {
	repo repository.ShippingRepository
}

func NewShippingService(repo repository.ShippingRepository) ShippingService {
	return &shippingService{repo: repo}
}

func (s *shippingService) CreateZone(ctx context.Context, req *models.CreateShippingZoneRequest) (*models.ShippingZone, error) {

	zone := &models.ShippingZone{
		ID:        uuid.New(),
		Name:      req.Name,
		Countries: req.Countries,
	}

	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return nil, appErrors.DatabaseError("Failed to create shipping zone").WithError(err)
	}

	return zone, nil
}

func (s *shippingService) ListZones(ctx context.Context) ([]models.ShippingZone, error) {

	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list shipping zones").WithError(err)
	}

	return zones, nil
}

func (s *shippingService) DeleteZone(ctx context.Context, id uuid.UUID) error {

	refs, err := s.repo.CountOrdersForZone(ctx, id)
	if err != nil {
		return appErrors.DatabaseError("Failed to check zone references").WithError(err)
	}

	if refs > 0 {
		return appErrors.ConflictError("Shipping zone is still referenced by orders")
	}

	if err := s.repo.DeleteZone(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Shipping zone not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete shipping zone").WithError(err)
	}

	return nil
}

func (s *shippingService) CreateMethod(ctx context.Context, req *models.CreateShippingMethodRequest) (*models.ShippingMethod, error) {

	method := &models.ShippingMethod{
		ID:              uuid.New(),
		ZoneID:          req.ZoneID,
		Name:            req.Name,
		Rate:            req.Rate,
		MinDeliveryDays: req.MinDeliveryDays,
		MaxDeliveryDays: req.MaxDeliveryDays,
	}

	if err := s.repo.CreateMethod(ctx, method); err != nil {
		return nil, appErrors.DatabaseError("Failed to create shipping method").WithError(err)
	}

	return method, nil
}

func (s *shippingService) ListMethodsForZone(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingMethod, error) {

	methods, err := s.repo.ListMethodsForZone(ctx, zoneID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list shipping methods").WithError(err)
	}

	return methods, nil
}

func (s *shippingService) UpdateMethod(ctx context.Context, id uuid.UUID, req *models.UpdateShippingMethodRequest) (*models.ShippingMethod, error) {

	method, err := s.repo.GetMethodByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Shipping method not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load shipping method").WithError(err)
	}

	if req.Name != nil {
		method.Name = *req.Name
	}

	if req.Rate != nil {
		method.Rate = *req.Rate
	}

	if req.MinDeliveryDays != nil {
		method.MinDeliveryDays = *req.MinDeliveryDays
	}

	if req.MaxDeliveryDays != nil {
		method.MaxDeliveryDays = *req.MaxDeliveryDays
	}

	if req.Active != nil {
		method.Active = *req.Active
	}

	if method.MaxDeliveryDays < method.MinDeliveryDays {
		return nil, appErrors.BadRequestError("Max delivery days cannot be below min delivery days")
	}

	if err := s.repo.UpdateMethod(ctx, method); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Shipping method not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update shipping method").WithError(err)
	}

	return method, nil
}

func (s *shippingService) DeleteMethod(ctx context.Context, id uuid.UUID) error {

	refs, err := s.repo.CountOrdersForMethod(ctx, id)
	if err != nil {
		return appErrors.DatabaseError("Failed to check method references").WithError(err)
	}

	if refs > 0 {
		return appErrors.ConflictError("Shipping method is still referenced by orders")
	}

	if err := s.repo.DeleteMethod(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Shipping method not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete shipping method").WithError(err)
	}

	return nil
}
