package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: validator.New()}
}

func (h *InventoryHandler) GetRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid inventory id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		record, err := h.inventoryService.GetRecord(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch inventory record", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, record)
	}
}

// AdjustInventory applies a signed quantity delta and records the movement.
// Admin only.
func (h *InventoryHandler) AdjustInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid inventory id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.AdjustInventoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid inventory adjustment input")
			return
		}

		record, movement, err := h.inventoryService.Adjust(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to adjust inventory",
				slog.String("inventoryId", id.String()),
				slog.Int("delta", req.Delta),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Inventory adjusted",
			slog.String("inventoryId", id.String()),
			slog.String("actorId", claims.UserID.String()),
			slog.Int("delta", req.Delta),
			slog.Int("newTotal", record.QuantityTotal))
		response.Success(w, http.StatusOK, map[string]any{
			"record":   record,
			"movement": movement,
		})
	}
}

func (h *InventoryHandler) ListMovements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid inventory id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		movements, total, err := h.inventoryService.ListMovements(r.Context(), id, page, pageSize)
		if err != nil {
			logger.Error("Failed to list stock movements", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     movements,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
