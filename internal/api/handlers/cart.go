package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	"github.com/gildedthread/storefront-api/internal/metrics"
	"github.com/gildedthread/storefront-api/internal/models"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// SaveCart reconciles the submitted cart state with the stored session.
// Works for both anonymous callers (token only) and signed-in customers.
func (h *CartHandler) SaveCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var customerID *uuid.UUID

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			customerID = &claims.UserID
		}

		var req models.SaveCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid save cart input")
			return
		}

		result, err := h.cartService.SaveCart(r.Context(), customerID, &req)
		if err != nil {
			metrics.CartSyncsTotal.WithLabelValues("error").Inc()

			logger.Error("Failed to save cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		if result.SessionToken == nil {
			metrics.CartSyncsTotal.WithLabelValues("cleared").Inc()
		} else {
			metrics.CartSyncsTotal.WithLabelValues("saved").Inc()
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		token := r.PathValue("token")

		session, err := h.cartService.GetCart(r.Context(), token)
		if err != nil {
			logger.Warn("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// RecoverCart restores an abandoned session from a recovery e-mail link.
func (h *CartHandler) RecoverCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		token := r.PathValue("token")

		session, err := h.cartService.RecoverCart(r.Context(), token)
		if err != nil {
			logger.Warn("Failed to recover cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart recovered", slog.String("sessionToken", token))
		response.Success(w, http.StatusOK, session)
	}
}
