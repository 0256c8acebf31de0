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

type AddressService interface {
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]models.Address, error)
	CreateAddress(ctx context.Context, customerID uuid.UUID, req *models.SaveAddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, customerID, id uuid.UUID, req *models.SaveAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, customerID, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]models.Address, error) {

	addresses, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) CreateAddress(ctx context.Context, customerID uuid.UUID, req *models.SaveAddressRequest) (*models.Address, error) {

	address := &models.Address{
		ID:         uuid.New(),
		CustomerID: customerID,
		Recipient:  req.Recipient,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, appErrors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, customerID, id uuid.UUID, req *models.SaveAddressRequest) (*models.Address, error) {

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load address").WithError(err)
	}

	if existing.CustomerID != customerID {
		return nil, appErrors.ForbiddenError("You don't have permission to modify this address")
	}

	address := &models.Address{
		ID:         id,
		CustomerID: customerID,
		Recipient:  req.Recipient,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, customerID, id uuid.UUID) error {

	if err := s.repo.DeleteAddress(ctx, id, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Address not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
