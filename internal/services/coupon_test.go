package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/gildedthread/storefront-api/internal/cache/mocks"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/repositories/mocks"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrInt(v int) *int { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *appErrors.AppError

	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCouponService_ValidateCoupon(t *testing.T) {

	mockCouponRepo := new(mocks.CouponRepository)
	mockOrderRepo := new(mocks.OrderRepository)

	couponService := service.NewCouponService(mockCouponRepo, mockOrderRepo, nil, time.Minute)

	ctx := context.Background()

	t.Run("Success - Percentage Discount", func(t *testing.T) {

		// SPRING10: 10% off a 50.00 cart is 5.00.
		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "SPRING10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			Active:        true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "SPRING10").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "SPRING10",
			Subtotal: 50.00,
		})

		require.NoError(t, err)
		assert.Equal(t, "SPRING10", result.Code)
		assert.Equal(t, models.DiscountPercentage, result.DiscountType)
		assert.InDelta(t, 5.00, result.DiscountAmount, 0.0001)
		assert.False(t, result.FreeShipping)

		mockCouponRepo.AssertExpectations(t)
	})

	t.Run("Success - Percentage Discount Rounds Half Up At The Cent", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "SUMMER15",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 15,
			Active:        true,
		}

		// 15% of 33.33 is 4.9995, which rounds up to 5.00.
		mockCouponRepo.On("GetCouponByCode", ctx, "SUMMER15").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "SUMMER15",
			Subtotal: 33.33,
		})

		require.NoError(t, err)
		assert.InDelta(t, 5.00, result.DiscountAmount, 0.0001)
	})

	t.Run("Success - Percentage Discount Capped By Max Discount Amount", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:                uuid.New(),
			Code:              "BIG50",
			DiscountType:      models.DiscountPercentage,
			DiscountValue:     50,
			MaxDiscountAmount: ptrFloat(25.00),
			Active:            true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "BIG50").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "BIG50",
			Subtotal: 200.00,
		})

		require.NoError(t, err)
		assert.InDelta(t, 25.00, result.DiscountAmount, 0.0001)
	})

	t.Run("Success - Fixed Discount Capped At Subtotal", func(t *testing.T) {

		// FLAT20 against a 15.00 cart never exceeds the subtotal.
		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "FLAT20",
			DiscountType:  models.DiscountFixedAmount,
			DiscountValue: 20.00,
			Active:        true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "FLAT20").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "FLAT20",
			Subtotal: 15.00,
		})

		require.NoError(t, err)
		assert.InDelta(t, 15.00, result.DiscountAmount, 0.0001)
	})

	t.Run("Success - Free Shipping Coupon Carries No Amount", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:           uuid.New(),
			Code:         "SHIPFREE",
			DiscountType: models.DiscountFreeShip,
			Active:       true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "SHIPFREE").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "SHIPFREE",
			Subtotal: 40.00,
		})

		require.NoError(t, err)
		assert.True(t, result.FreeShipping)
		assert.Zero(t, result.DiscountAmount)
	})

	t.Run("Success - Scoped Coupon Matches A Cart Product", func(t *testing.T) {

		scopedProduct := uuid.New()

		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "RINGS10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			ProductIDs:    []uuid.UUID{scopedProduct},
			Active:        true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "RINGS10").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:       "RINGS10",
			Subtotal:   80.00,
			ProductIDs: []uuid.UUID{uuid.New(), scopedProduct},
		})

		require.NoError(t, err)
		assert.InDelta(t, 8.00, result.DiscountAmount, 0.0001)
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {

		mockCouponRepo.On("GetCouponByCode", ctx, "NOPE").Return(nil, sql.ErrNoRows).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "NOPE",
			Subtotal: 10.00,
		})

		assert.Nil(t, result)
		assertErrorCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Inactive Coupon", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:           uuid.New(),
			Code:         "RETIRED",
			DiscountType: models.DiscountPercentage,
			Active:       false,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "RETIRED").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "RETIRED",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodeCouponInactive)
	})

	t.Run("Failure - Not Yet Valid", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:           uuid.New(),
			Code:         "XMAS",
			DiscountType: models.DiscountPercentage,
			ValidFrom:    ptrTime(time.Now().Add(24 * time.Hour)),
			Active:       true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "XMAS").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "XMAS",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodeCouponNotYetValid)
	})

	t.Run("Failure - Expired", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:           uuid.New(),
			Code:         "OLDSALE",
			DiscountType: models.DiscountPercentage,
			ValidUntil:   ptrTime(time.Now().Add(-time.Hour)),
			Active:       true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "OLDSALE").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "OLDSALE",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodeCouponExpired)
	})

	t.Run("Failure - Global Usage Limit Reached", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:           uuid.New(),
			Code:         "LIMITED",
			DiscountType: models.DiscountPercentage,
			MaxUses:      ptrInt(100),
			CurrentUses:  100,
			Active:       true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "LIMITED").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "LIMITED",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodeUsageLimitReached)
	})

	t.Run("Failure - Per Customer Limit Reached", func(t *testing.T) {

		customerID := uuid.New()

		coupon := &models.Coupon{
			ID:             uuid.New(),
			Code:           "ONEEACH",
			DiscountType:   models.DiscountPercentage,
			DiscountValue:  10,
			MaxUsesPerUser: ptrInt(1),
			Active:         true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "ONEEACH").Return(coupon, nil).Once()
		mockOrderRepo.On("CountCouponUsesByCustomer", ctx, "ONEEACH", customerID).Return(1, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, &customerID, &models.ValidateCouponRequest{
			Code:     "ONEEACH",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodePerCustomerLimitReached)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Success - Per Customer Limit Skipped For Anonymous Caller", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:             uuid.New(),
			Code:           "ONEEACH",
			DiscountType:   models.DiscountPercentage,
			DiscountValue:  10,
			MaxUsesPerUser: ptrInt(1),
			Active:         true,
		}

		// No CountCouponUsesByCustomer expectation: anonymous validation
		// must not hit the order history at all.
		mockCouponRepo.On("GetCouponByCode", ctx, "ONEEACH").Return(coupon, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "ONEEACH",
			Subtotal: 10.00,
		})

		require.NoError(t, err)
		assert.InDelta(t, 1.00, result.DiscountAmount, 0.0001)
	})

	t.Run("Failure - Minimum Order Value Not Met", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "OVER50",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			MinOrderValue: ptrFloat(50.00),
			Active:        true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "OVER50").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "OVER50",
			Subtotal: 49.99,
		})

		assertErrorCode(t, err, appErrors.ErrCodeMinimumNotMet)
	})

	t.Run("Failure - Scoped Coupon With No Cart Overlap", func(t *testing.T) {

		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "NECKLACES",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			CollectionIDs: []uuid.UUID{uuid.New()},
			Active:        true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "NECKLACES").Return(coupon, nil).Once()

		_, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:          "NECKLACES",
			Subtotal:      60.00,
			CollectionIDs: []uuid.UUID{uuid.New()},
		})

		assertErrorCode(t, err, appErrors.ErrCodeCouponNotApplicable)
	})

	t.Run("Failure - Order History Lookup Error", func(t *testing.T) {

		customerID := uuid.New()

		coupon := &models.Coupon{
			ID:             uuid.New(),
			Code:           "ONEEACH",
			DiscountType:   models.DiscountPercentage,
			MaxUsesPerUser: ptrInt(1),
			Active:         true,
		}

		mockCouponRepo.On("GetCouponByCode", ctx, "ONEEACH").Return(coupon, nil).Once()
		mockOrderRepo.On("CountCouponUsesByCustomer", ctx, "ONEEACH", customerID).
			Return(0, errors.New("connection reset")).Once()

		_, err := couponService.ValidateCoupon(ctx, &customerID, &models.ValidateCouponRequest{
			Code:     "ONEEACH",
			Subtotal: 10.00,
		})

		assertErrorCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestCouponService_ValidateCoupon_Cache(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Cache Hit Skips The Database", func(t *testing.T) {

		mockCouponRepo := new(mocks.CouponRepository)
		mockOrderRepo := new(mocks.OrderRepository)
		mockCache := new(cacheMocks.Cache)

		couponService := service.NewCouponService(mockCouponRepo, mockOrderRepo, mockCache, time.Minute)

		mockCache.On("Get", ctx, "coupon:SPRING10", mock.AnythingOfType("*models.Coupon")).
			Run(func(args mock.Arguments) {
				coupon := args.Get(2).(*models.Coupon)
				coupon.Code = "SPRING10"
				coupon.DiscountType = models.DiscountPercentage
				coupon.DiscountValue = 10
				coupon.Active = true
			}).
			Return(true, nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "SPRING10",
			Subtotal: 50.00,
		})

		require.NoError(t, err)
		assert.InDelta(t, 5.00, result.DiscountAmount, 0.0001)

		mockCouponRepo.AssertNotCalled(t, "GetCouponByCode", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Miss Falls Through And Backfills", func(t *testing.T) {

		mockCouponRepo := new(mocks.CouponRepository)
		mockOrderRepo := new(mocks.OrderRepository)
		mockCache := new(cacheMocks.Cache)

		couponService := service.NewCouponService(mockCouponRepo, mockOrderRepo, mockCache, time.Minute)

		coupon := &models.Coupon{
			ID:            uuid.New(),
			Code:          "SPRING10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			Active:        true,
		}

		mockCache.On("Get", ctx, "coupon:SPRING10", mock.AnythingOfType("*models.Coupon")).
			Return(false, nil).Once()
		mockCouponRepo.On("GetCouponByCode", ctx, "SPRING10").Return(coupon, nil).Once()
		mockCache.On("Set", ctx, "coupon:SPRING10", coupon, time.Minute).Return(nil).Once()

		result, err := couponService.ValidateCoupon(ctx, nil, &models.ValidateCouponRequest{
			Code:     "SPRING10",
			Subtotal: 50.00,
		})

		require.NoError(t, err)
		assert.InDelta(t, 5.00, result.DiscountAmount, 0.0001)

		mockCouponRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})
}

func TestCouponService_MarkRedeemed(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Usage Counter Incremented", func(t *testing.T) {

		mockCouponRepo := new(mocks.CouponRepository)

		couponService := service.NewCouponService(mockCouponRepo, new(mocks.OrderRepository), nil, time.Minute)

		mockCouponRepo.On("IncrementUsage", ctx, "SPRING10").Return(nil).Once()

		err := couponService.MarkRedeemed(ctx, "SPRING10")

		assert.NoError(t, err)
		mockCouponRepo.AssertExpectations(t)
	})

	t.Run("Failure - Guard Rejects At Usage Limit", func(t *testing.T) {

		mockCouponRepo := new(mocks.CouponRepository)

		couponService := service.NewCouponService(mockCouponRepo, new(mocks.OrderRepository), nil, time.Minute)

		mockCouponRepo.On("IncrementUsage", ctx, "LIMITED").Return(sql.ErrNoRows).Once()

		err := couponService.MarkRedeemed(ctx, "LIMITED")

		assertErrorCode(t, err, appErrors.ErrCodeConflict)
	})
}

func TestCouponService_CreateCoupon(t *testing.T) {

	ctx := context.Background()

	t.Run("Success - Code Is Uppercased", func(t *testing.T) {

		mockCouponRepo := new(mocks.CouponRepository)

		couponService := service.NewCouponService(mockCouponRepo, new(mocks.OrderRepository), nil, time.Minute)

		mockCouponRepo.On("CreateCoupon", ctx, mock.MatchedBy(func(c *models.Coupon) bool {
			return c.Code == "SPRING10"
		})).Return(nil).Once()

		coupon, err := couponService.CreateCoupon(ctx, &models.CreateCouponRequest{
			Code:          "spring10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, "SPRING10", coupon.Code)
		mockCouponRepo.AssertExpectations(t)
	})

	t.Run("Failure - Percentage Above 100 Rejected", func(t *testing.T) {

		couponService := service.NewCouponService(new(mocks.CouponRepository), new(mocks.OrderRepository), nil, time.Minute)

		_, err := couponService.CreateCoupon(ctx, &models.CreateCouponRequest{
			Code:          "TOOMUCH",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 150,
		})

		assertErrorCode(t, err, appErrors.ErrCodeBadRequest)
	})
}
