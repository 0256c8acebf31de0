package service

import (
	"context"
	"time"

	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
)

type AnalyticsService interface {
	// SalesSummary aggregates the half-open window [from, to).
	SalesSummary(ctx context.Context, from, to time.Time) (*models.SalesSummary, error)
}

type analyticsService struct {
	orderRepo repository.OrderRepository
}

func NewAnalyticsService(orderRepo repository.OrderRepository) AnalyticsService {
	return &analyticsService{orderRepo: orderRepo}
}

func (s *analyticsService) SalesSummary(ctx context.Context, from, to time.Time) (*models.SalesSummary, error) {

	if !from.Before(to) {
		return nil, appErrors.BadRequestError("'from' must be before 'to'")
	}

	summary, err := s.orderRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to aggregate sales").WithError(err)
	}

	return summary, nil
}
