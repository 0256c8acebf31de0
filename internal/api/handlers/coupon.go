package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/metrics"
	"github.com/gildedthread/storefront-api/internal/models"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponService service.CouponService
	validator     *validator.Validate
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService, validator: validator.New()}
}

// CreateCoupon registers a new discount code. Admin only.
func (h *CouponHandler) CreateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create coupon input")
			return
		}

		coupon, err := h.couponService.CreateCoupon(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create coupon", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon created", slog.String("code", coupon.Code))
		response.Success(w, http.StatusCreated, coupon)
	}
}

func (h *CouponHandler) ListCoupons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		coupons, total, err := h.couponService.ListCoupons(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list coupons", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     coupons,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *CouponHandler) DeactivateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid coupon id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.couponService.DeactivateCoupon(r.Context(), id); err != nil {
			logger.Error("Failed to deactivate coupon", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon deactivated", slog.String("couponId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

// ValidateCoupon checks a code against the caller's cart and returns the
// computed discount. Validation never consumes a use.
func (h *CouponHandler) ValidateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var customerID *uuid.UUID

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			customerID = &claims.UserID
		}

		var req models.ValidateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid validate coupon input")
			return
		}

		result, err := h.couponService.ValidateCoupon(r.Context(), customerID, &req)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok {
				metrics.CouponValidationsTotal.WithLabelValues(appErr.Code).Inc()
			}

			logger.Info("Coupon validation rejected", slog.String("code", req.Code), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		metrics.CouponValidationsTotal.WithLabelValues("OK").Inc()

		logger.Info("Coupon validated",
			slog.String("code", result.Code),
			slog.Float64("discount", result.DiscountAmount))
		response.Success(w, http.StatusOK, result)
	}
}
