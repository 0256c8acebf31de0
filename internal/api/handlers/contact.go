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

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

func (h *ContactHandler) SubmitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid contact form input")
			return
		}

		message, err := h.contactService.SubmitMessage(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to submit contact message", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Contact message received", slog.String("messageId", message.ID.String()))
		response.Success(w, http.StatusCreated, map[string]string{"id": message.ID.String()})
	}
}

func (h *ContactHandler) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.NewsletterSubscribeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid newsletter input")
			return
		}

		subscriber, err := h.contactService.Subscribe(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to subscribe to newsletter", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"email": subscriber.Email})
	}
}
