package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils/response"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// SalesSummary reports order and cart activity over [from, to). Both query
// parameters are RFC 3339 timestamps; the window defaults to the last 30
// days when omitted.
func (h *AnalyticsHandler) SalesSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		now := time.Now().UTC()
		from := now.AddDate(0, 0, -30)
		to := now

		if raw := r.URL.Query().Get("from"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				response.Error(w, appErrors.BadRequestError("Invalid 'from' timestamp").WithError(err))
				return
			}

			from = parsed
		}

		if raw := r.URL.Query().Get("to"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				response.Error(w, appErrors.BadRequestError("Invalid 'to' timestamp").WithError(err))
				return
			}

			to = parsed
		}

		summary, err := h.analyticsService.SalesSummary(r.Context(), from, to)
		if err != nil {
			logger.Error("Failed to build sales summary", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
