// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/middleware"
	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/service"
)

const (
	errorCodeInvalidWebhook = "INVALID_WEBHOOK"
	errorCodeInvalidQuery   = "INVALID_QUERY"
)

const (
	errorMessageInvalidWebhook         = "Webhook payload is missing required fields"
	errorMessageFailedToRetrieveMsgs   = "Failed to retrieve messages"
	errorMessageInvalidPaginationQuery = "Invalid pagination parameters"
)

// emptyTwiML tells the provider not to auto-reply; all outbound SMS go
// through the REST API instead.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates the handler set backing the router.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// InboundSMS handles the provider's inbound-message webhook. The provider
// retries on non-2xx, so every outcome past payload validation returns 200:
// sender-caused outcomes are not delivery failures.
func (h *Handler) InboundSMS(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidWebhook, errorMessageInvalidWebhook)
		return
	}

	sms := models.InboundSMS{
		From:       r.PostFormValue("From"),
		To:         r.PostFormValue("To"),
		Body:       r.PostFormValue("Body"),
		ExternalID: r.PostFormValue("MessageSid"),
	}
	if sms.From == "" || sms.To == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidWebhook, errorMessageInvalidWebhook)
		return
	}

	if err := h.service.Resolver.HandleInbound(r.Context(), sms); err != nil {
		// Internal failure: logged, but still acknowledged so the provider
		// does not hammer the endpoint with retries of the same message.
		h.logger.Error("Inbound SMS processing failed",
			zap.String("request_id", requestID),
			zap.String("external_id", sms.ExternalID),
			zap.Error(err))
	}

	h.writeTwiML(w)
}

// StatusCallback handles the provider's delivery-status webhook.
func (h *Handler) StatusCallback(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidWebhook, errorMessageInvalidWebhook)
		return
	}

	externalID := r.PostFormValue("MessageSid")
	providerStatus := r.PostFormValue("MessageStatus")
	if externalID == "" || providerStatus == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidWebhook, errorMessageInvalidWebhook)
		return
	}

	status, ok := mapProviderStatus(providerStatus)
	if !ok {
		// Interim statuses carry no state change worth recording.
		h.writeTwiML(w)
		return
	}

	callback := models.StatusCallback{
		ExternalID: externalID,
		Status:     status,
		ErrorCode:  r.PostFormValue("ErrorCode"),
	}
	if err := h.service.Resolver.HandleStatusCallback(r.Context(), callback); err != nil {
		h.logger.Error("Status callback processing failed",
			zap.String("request_id", requestID),
			zap.String("external_id", externalID),
			zap.Error(err))
	}

	h.writeTwiML(w)
}

// GetMessages serves the paginated message list for operational inspection.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidQuery, errorMessageInvalidPaginationQuery)
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidQuery, errorMessageInvalidPaginationQuery)
		return
	}

	result, err := h.service.Message.ListMessages(page, limit)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to list messages",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToRetrieveMsgs)
		return
	}

	render.JSON(w, r, result)
}

// HealthCheck reports aggregate component health. Degraded still returns
// 200 so monitoring can see the detail while the service stays routable.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == "unhealthy" {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, healthResponse{
		HealthStatus: health,
		Timestamp:    time.Now(),
	})
}

type healthResponse struct {
	*service.HealthStatus
	Timestamp time.Time `json:"timestamp"`
}

// mapProviderStatus translates the provider's delivery states into message
// statuses. Interim states return ok=false and are ignored.
func mapProviderStatus(providerStatus string) (models.MessageStatus, bool) {
	switch providerStatus {
	case "queued", "accepted", "sending":
		return models.MessageStatusProcessing, true
	case "sent":
		return models.MessageStatusSent, true
	case "delivered":
		return models.MessageStatusDelivered, true
	case "failed", "undelivered":
		return models.MessageStatusFailed, true
	default:
		return "", false
	}
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) writeTwiML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(emptyTwiML))
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, models.ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}
