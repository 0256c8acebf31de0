package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	appErrors "github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/models"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
	stripeClient "github.com/gildedthread/storefront-api/pkg/stripe"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	stripeSDK "github.com/stripe/stripe-go/v81"
)

const maxWebhookBodySize = 1 << 20

type WebhookHandler struct {
	catalogService service.CatalogService
	paymentService service.PaymentService
	stripe         stripeClient.Client
	cmsSecret      string
	validator      *validator.Validate
}

func NewWebhookHandler(catalogService service.CatalogService, paymentService service.PaymentService, stripe stripeClient.Client, cmsSecret string) *WebhookHandler {
	return &WebhookHandler{
		catalogService: catalogService,
		paymentService: paymentService,
		stripe:         stripe,
		cmsSecret:      cmsSecret,
		validator:      validator.New(),
	}
}

// CMSProductSync ingests product change events from the headless CMS.
// Authenticated by a shared secret header, not a customer token.
func (h *WebhookHandler) CMSProductSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		secret := r.Header.Get("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.cmsSecret)) != 1 {
			logger.Warn("CMS webhook rejected: bad secret")
			response.Error(w, appErrors.UnauthorizedError("Invalid webhook secret"))

			return
		}

		var event models.CMSWebhookEvent
		if !utils.ParseAndValidate(r, w, &event, h.validator) {
			logger.Warn("Invalid CMS webhook payload")
			return
		}

		if err := h.catalogService.HandleCMSEvent(r.Context(), &event); err != nil {
			logger.Error("Failed to process CMS event",
				slog.String("event", event.Event),
				slog.String("cmsId", event.Product.CMSID),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("CMS event processed",
			slog.String("event", event.Event),
			slog.String("cmsId", event.Product.CMSID))
		response.Success(w, http.StatusOK, map[string]string{"status": "processed"})
	}
}

// paymentMetadata is what the checkout flow stashes on the payment intent.
type paymentMetadata struct {
	OrderID      uuid.UUID          `json:"order_id"`
	SessionToken *string            `json:"session_token,omitempty"`
	Lines        []models.OrderLine `json:"lines"`
}

// PaymentConfirmation consumes signed payment-provider events and settles
// the order they reference. Unrecognized event types are acknowledged and
// dropped so the provider stops retrying them.
func (h *WebhookHandler) PaymentConfirmation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Failed to read webhook body").WithError(err))
			return
		}

		event, err := h.stripe.VerifyWebhookSignature(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			logger.Warn("Payment webhook rejected: bad signature", slog.Any("error", err))
			response.Error(w, appErrors.UnauthorizedError("Invalid webhook signature"))

			return
		}

		if event.Type != stripeClient.EventPaymentIntentSucceeded {
			logger.Info("Ignoring payment event", slog.String("type", string(event.Type)))
			response.Success(w, http.StatusOK, map[string]string{"status": "ignored"})

			return
		}

		var intent stripeSDK.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			response.Error(w, appErrors.BadRequestError("Malformed payment intent payload").WithError(err))
			return
		}

		meta, err := parsePaymentMetadata(intent.Metadata)
		if err != nil {
			logger.Error("Payment intent carries unusable metadata",
				slog.String("paymentIntentId", intent.ID),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		if err := h.paymentService.ConfirmOrderPayment(r.Context(), meta.OrderID, meta.SessionToken, meta.Lines); err != nil {
			logger.Error("Failed to confirm order payment",
				slog.String("orderId", meta.OrderID.String()),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order payment confirmed", slog.String("orderId", meta.OrderID.String()))
		response.Success(w, http.StatusOK, map[string]string{"status": "processed"})
	}
}

func parsePaymentMetadata(metadata map[string]string) (*paymentMetadata, error) {

	orderID, err := uuid.Parse(metadata["order_id"])
	if err != nil {
		return nil, appErrors.BadRequestError("Missing or invalid order_id in payment metadata").WithError(err)
	}

	meta := &paymentMetadata{OrderID: orderID}

	if token := metadata["session_token"]; token != "" {
		meta.SessionToken = &token
	}

	if raw := metadata["lines"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta.Lines); err != nil {
			return nil, appErrors.BadRequestError("Malformed lines in payment metadata").WithError(err)
		}
	}

	return meta, nil
}
