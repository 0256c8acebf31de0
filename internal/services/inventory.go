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

type InventoryService interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*models.InventoryRecord, error)
	// Adjust applies a signed delta atomically together with its audit
	// movement. A delta that would drive the total negative fails without
	// touching the record.
	Adjust(ctx context.Context, id uuid.UUID, req *models.AdjustInventoryRequest) (*models.InventoryRecord, *models.StockMovement, error)
	ListMovements(ctx context.Context, inventoryID uuid.UUID, page, pageSize int) ([]models.StockMovement, int, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) GetRecord(ctx context.Context, id uuid.UUID) (*models.InventoryRecord, error) {

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Inventory record not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load inventory record").WithError(err)
	}

	return record, nil
}

func (s *inventoryService) Adjust(ctx context.Context, id uuid.UUID, req *models.AdjustInventoryRequest) (*models.InventoryRecord, *models.StockMovement, error) {

	if req.Delta == 0 {
		return nil, nil, appErrors.BadRequestError("Adjustment delta cannot be zero")
	}

	record, movement, err := s.repo.Adjust(ctx, id, req.Delta, req.Type, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, nil, appErrors.InsufficientStockError("Adjustment would make stock negative").WithError(err)
		case errors.Is(err, sql.ErrNoRows):
			return nil, nil, appErrors.NotFoundError("Inventory record not found").WithError(err)
		default:
			return nil, nil, appErrors.DatabaseError("Failed to adjust inventory").WithError(err)
		}
	}

	return record, movement, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, inventoryID uuid.UUID, page, pageSize int) ([]models.StockMovement, int, error) {

	movements, total, err := s.repo.ListMovements(ctx, inventoryID, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list stock movements").WithError(err)
	}

	return movements, total, nil
}
