package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	"github.com/gildedthread/storefront-api/internal/models"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ShippingHandler struct {
	shippingService service.ShippingService
	validator       *validator.Validate
}

func NewShippingHandler(shippingService service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService, validator: validator.New()}
}

func (h *ShippingHandler) CreateZone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateShippingZoneRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid shipping zone input")
			return
		}

		zone, err := h.shippingService.CreateZone(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create shipping zone", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Shipping zone created", slog.String("zoneId", zone.ID.String()))
		response.Success(w, http.StatusCreated, zone)
	}
}

func (h *ShippingHandler) ListZones() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		zones, err := h.shippingService.ListZones(r.Context())
		if err != nil {
			logger.Error("Failed to list shipping zones", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, zones)
	}
}

func (h *ShippingHandler) DeleteZone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid zone id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.shippingService.DeleteZone(r.Context(), id); err != nil {
			logger.Error("Failed to delete shipping zone", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Shipping zone deleted", slog.String("zoneId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

func (h *ShippingHandler) CreateMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateShippingMethodRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid shipping method input")
			return
		}

		method, err := h.shippingService.CreateMethod(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create shipping method", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Shipping method created", slog.String("methodId", method.ID.String()))
		response.Success(w, http.StatusCreated, method)
	}
}

// ListMethodsForZone returns the rate table for one zone, active and
// inactive alike.
func (h *ShippingHandler) ListMethodsForZone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		zoneID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid zone id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		methods, err := h.shippingService.ListMethodsForZone(r.Context(), zoneID)
		if err != nil {
			logger.Error("Failed to list shipping methods", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, methods)
	}
}

func (h *ShippingHandler) UpdateMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid method id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateShippingMethodRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid shipping method update input")
			return
		}

		method, err := h.shippingService.UpdateMethod(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update shipping method", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Shipping method updated", slog.String("methodId", id.String()))
		response.Success(w, http.StatusOK, method)
	}
}

func (h *ShippingHandler) DeleteMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid method id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.shippingService.DeleteMethod(r.Context(), id); err != nil {
			logger.Error("Failed to delete shipping method", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Shipping method deleted", slog.String("methodId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
