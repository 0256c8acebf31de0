package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gildedthread/storefront-api/internal/cache"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CouponService interface {
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)
	ListCoupons(ctx context.Context, page, pageSize int) ([]models.Coupon, int, error)
	DeactivateCoupon(ctx context.Context, id uuid.UUID) error
	// ValidateCoupon runs the full check chain and computes the discount.
	// It never mutates anything; the usage counter moves only when payment
	// is confirmed (MarkRedeemed).
	ValidateCoupon(ctx context.Context, customerID *uuid.UUID, req *models.ValidateCouponRequest) (*models.CouponValidationResult, error)
	MarkRedeemed(ctx context.Context, code string) error
}

type couponService struct {
	repo      repository.CouponRepository
	orderRepo repository.OrderRepository
	cache     cache.Cache
	couponTTL time.Duration
	now       func() time.Time
}

func NewCouponService(repo repository.CouponRepository, orderRepo repository.OrderRepository, c cache.Cache, couponTTL time.Duration) CouponService {
	return &couponService{
		repo:      repo,
		orderRepo: orderRepo,
		cache:     c,
		couponTTL: couponTTL,
		now:       time.Now,
	}
}

func (s *couponService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {

	if req.DiscountType == models.DiscountPercentage && req.DiscountValue > 100 {
		return nil, appErrors.BadRequestError("Percentage discount cannot exceed 100")
	}

	coupon := &models.Coupon{
		ID:                uuid.New(),
		Code:              strings.ToUpper(req.Code),
		Description:       req.Description,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinOrderValue:     req.MinOrderValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		MaxUses:           req.MaxUses,
		MaxUsesPerUser:    req.MaxUsesPerUser,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		ProductIDs:        req.ProductIDs,
		CollectionIDs:     req.CollectionIDs,
	}

	if err := s.repo.CreateCoupon(ctx, coupon); err != nil {
		return nil, appErrors.DatabaseError("Failed to create coupon").WithError(err)
	}

	s.invalidate(ctx, coupon.Code)

	return coupon, nil
}

func (s *couponService) ListCoupons(ctx context.Context, page, pageSize int) ([]models.Coupon, int, error) {

	coupons, total, err := s.repo.ListCoupons(ctx, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list coupons").WithError(err)
	}

	return coupons, total, nil
}

func (s *couponService) DeactivateCoupon(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeactivateCoupon(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Coupon not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to deactivate coupon").WithError(err)
	}

	return nil
}

func (s *couponService) ValidateCoupon(ctx context.Context, customerID *uuid.UUID, req *models.ValidateCouponRequest) (*models.CouponValidationResult, error) {

	coupon, err := s.lookupCoupon(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	if !coupon.Active {
		return nil, appErrors.CouponError(appErrors.ErrCodeCouponInactive, "This coupon is no longer active")
	}

	now := s.now()

	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, appErrors.CouponError(appErrors.ErrCodeCouponNotYetValid, "This coupon is not valid yet")
	}

	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return nil, appErrors.CouponError(appErrors.ErrCodeCouponExpired, "This coupon has expired")
	}

	if coupon.MaxUses != nil && coupon.CurrentUses >= *coupon.MaxUses {
		return nil, appErrors.CouponError(appErrors.ErrCodeUsageLimitReached, "This coupon has reached its usage limit")
	}

	if coupon.MaxUsesPerUser != nil && customerID != nil {
		uses, err := s.orderRepo.CountCouponUsesByCustomer(ctx, coupon.Code, *customerID)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to check coupon usage").WithError(err)
		}

		if uses >= *coupon.MaxUsesPerUser {
			return nil, appErrors.CouponError(appErrors.ErrCodePerCustomerLimitReached, "You have already used this coupon")
		}
	}

	if coupon.MinOrderValue != nil && req.Subtotal < *coupon.MinOrderValue {
		return nil, appErrors.CouponError(appErrors.ErrCodeMinimumNotMet, "Cart subtotal is below the coupon minimum")
	}

	if !couponApplies(coupon, req.ProductIDs, req.CollectionIDs) {
		return nil, appErrors.CouponError(appErrors.ErrCodeCouponNotApplicable, "This coupon does not apply to the items in your cart")
	}

	result := &models.CouponValidationResult{
		Code:         coupon.Code,
		DiscountType: coupon.DiscountType,
	}

	switch coupon.DiscountType {
	case models.DiscountPercentage:
		discount := req.Subtotal * coupon.DiscountValue / 100
		if coupon.MaxDiscountAmount != nil && discount > *coupon.MaxDiscountAmount {
			discount = *coupon.MaxDiscountAmount
		}

		result.DiscountAmount = utils.RoundCents(discount)
	case models.DiscountFixedAmount:
		result.DiscountAmount = utils.RoundCents(min(coupon.DiscountValue, req.Subtotal))
	case models.DiscountFreeShip:
		result.FreeShipping = true
	}

	return result, nil
}

func (s *couponService) MarkRedeemed(ctx context.Context, code string) error {

	if err := s.repo.IncrementUsage(ctx, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The guard rejected: either the code is unknown or the
			// counter already sits at max-uses. Both are terminal here.
			return appErrors.ConflictError("Coupon usage limit already reached").WithError(err)
		}

		return appErrors.DatabaseError("Failed to record coupon redemption").WithError(err)
	}

	s.invalidate(ctx, strings.ToUpper(code))

	return nil
}

// couponApplies checks the scope intersection. A coupon with no product or
// collection scope applies to every cart.
func couponApplies(coupon *models.Coupon, productIDs, collectionIDs []uuid.UUID) bool {
	if len(coupon.ProductIDs) == 0 && len(coupon.CollectionIDs) == 0 {
		return true
	}

	scoped := make(map[uuid.UUID]bool, len(coupon.ProductIDs)+len(coupon.CollectionIDs))

	for _, id := range coupon.ProductIDs {
		scoped[id] = true
	}

	for _, id := range productIDs {
		if scoped[id] {
			return true
		}
	}

	clear(scoped)

	for _, id := range coupon.CollectionIDs {
		scoped[id] = true
	}

	for _, id := range collectionIDs {
		if scoped[id] {
			return true
		}
	}

	return false
}

func (s *couponService) lookupCoupon(ctx context.Context, code string) (*models.Coupon, error) {

	key := cache.Key(cache.CouponKeyPrefix, strings.ToUpper(code))

	var cached models.Coupon

	if s.cache != nil {
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Coupon cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return &cached, nil
		}
	}

	coupon, err := s.repo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Coupon not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to look up coupon").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, coupon, s.couponTTL); err != nil {
			slog.Warn("Coupon cache write failed", slog.String("error", err.Error()))
		}
	}

	return coupon, nil
}

func (s *couponService) invalidate(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.CouponKeyPrefix, code)); err != nil {
		slog.Warn("Coupon cache invalidation failed", slog.String("error", err.Error()))
	}
}
