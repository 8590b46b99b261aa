package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/fcm"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/message"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/models"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/repository"
	"github.com/kalejaiyeoluwadara/push-notification-setup/pkg/metrics"
)

const (
	endpointSend      = "send"
	endpointMulticast = "send_multiple"

	suppressedError = "token suppressed"
)

// NotificationHandler serves the send endpoints. It holds no request state;
// every collaborator is injected at construction.
type NotificationHandler struct {
	sender         fcm.Sender
	suppressor     repository.TokenSuppressor // nil when suppression is disabled
	metrics        *metrics.Metrics
	logger         *slog.Logger
	timeout        time.Duration
	suppressionTTL time.Duration
}

func NewNotificationHandler(
	sender fcm.Sender,
	suppressor repository.TokenSuppressor,
	metricsCollector *metrics.Metrics,
	logger *slog.Logger,
	timeout time.Duration,
	suppressionTTL time.Duration,
) *NotificationHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotificationHandler{
		sender:         sender,
		suppressor:     suppressor,
		metrics:        metricsCollector,
		logger:         logger,
		timeout:        timeout,
		suppressionTTL: suppressionTTL,
	}
}

// SendSingle handles POST /api/notifications/send.
func (h *NotificationHandler) SendSingle(c *gin.Context) {
	var req models.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordSend(endpointSend, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if req.Token == "" {
		h.metrics.RecordSend(endpointSend, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "FCM token is required"})
		return
	}
	if req.Title == "" || req.Body == "" {
		h.metrics.RecordSend(endpointSend, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title and body are required"})
		return
	}

	opts := message.Options{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Data:     req.Data,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	started := time.Now()
	messageID, err := h.sender.Send(ctx, opts.Single(req.Token))
	h.metrics.RecordProviderCall(time.Since(started))
	if err != nil {
		h.metrics.RecordSend(endpointSend, metrics.OutcomeFailed)
		h.logger.Warn("send failed", slog.Any("error", err))

		switch fcm.ErrorCode(err) {
		case fcm.CodeInvalidToken:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid FCM token", Details: fcm.CodeInvalidToken})
		case fcm.CodeUnregistered:
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Token is not registered", Details: fcm.CodeUnregistered})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send notification", Details: err.Error()})
		}
		return
	}

	h.metrics.RecordSend(endpointSend, metrics.OutcomeDelivered)
	h.logger.Info("notification sent", slog.String("message_id", messageID))
	c.JSON(http.StatusOK, models.SendResponse{
		Success:   true,
		MessageID: messageID,
		Message:   "Notification sent successfully",
	})
}

// SendMulticast handles POST /api/notifications/send-multiple. A completed
// provider call always answers 200, even with partial per-token failures,
// so callers can prune dead tokens from the failedTokens list.
func (h *NotificationHandler) SendMulticast(c *gin.Context) {
	var req models.MulticastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordSend(endpointMulticast, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if len(req.Tokens) == 0 {
		h.metrics.RecordSend(endpointMulticast, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "An array of FCM tokens is required"})
		return
	}
	if req.Title == "" || req.Body == "" {
		h.metrics.RecordSend(endpointMulticast, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title and body are required"})
		return
	}

	opts := message.Options{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Data:     req.Data,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	failed := []models.FailedToken{}
	targets := req.Tokens
	if h.suppressor != nil {
		targets, failed = h.filterSuppressed(c, req.Tokens, failed)
	}

	if len(targets) == 0 {
		h.metrics.RecordSend(endpointMulticast, metrics.OutcomeFailed)
		c.JSON(http.StatusOK, models.MulticastResponse{
			Success:      true,
			FailureCount: len(failed),
			FailedTokens: failed,
			Message:      sentMessage(0),
		})
		return
	}

	started := time.Now()
	resp, err := h.sender.SendEachForMulticast(ctx, opts.Multicast(targets))
	h.metrics.RecordProviderCall(time.Since(started))
	if err != nil {
		h.metrics.RecordSend(endpointMulticast, metrics.OutcomeFailed)
		h.logger.Warn("multicast send failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send notifications", Details: err.Error()})
		return
	}

	for idx, sendResp := range resp.Responses {
		if sendResp.Success || idx >= len(targets) {
			continue
		}
		token := targets[idx]
		failed = append(failed, models.FailedToken{Token: token, Error: sendResp.Error.Error()})
		if h.suppressor != nil && fcm.ErrorCode(sendResp.Error) != "" {
			if err := h.suppressor.SuppressToken(c.Request.Context(), token, h.suppressionTTL); err != nil {
				h.logger.Warn("failed to suppress token", slog.Any("error", err))
			}
		}
	}

	h.metrics.RecordSend(endpointMulticast, metrics.OutcomeDelivered)
	h.metrics.RecordMulticastTokens(resp.SuccessCount, resp.FailureCount)
	h.logger.Info("multicast sent",
		slog.Int("success_count", resp.SuccessCount),
		slog.Int("failure_count", resp.FailureCount),
	)

	c.JSON(http.StatusOK, models.MulticastResponse{
		Success:      true,
		SuccessCount: resp.SuccessCount,
		FailureCount: len(failed),
		FailedTokens: failed,
		Message:      sentMessage(resp.SuccessCount),
	})
}

// Health handles GET /api/notifications/send. It never mutates state.
func (h *NotificationHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Message:   "Notification API is running",
		Timestamp: time.Now().UTC(),
	})
}

// filterSuppressed splits tokens the cache knows to be dead into the failed
// list without a provider call. Cache errors leave the token in play.
func (h *NotificationHandler) filterSuppressed(c *gin.Context, tokens []string, failed []models.FailedToken) ([]string, []models.FailedToken) {
	targets := make([]string, 0, len(tokens))
	suppressed := 0
	for _, token := range tokens {
		dead, err := h.suppressor.IsTokenSuppressed(c.Request.Context(), token)
		if err != nil {
			h.logger.Warn("suppression lookup failed", slog.Any("error", err))
			targets = append(targets, token)
			continue
		}
		if dead {
			suppressed++
			failed = append(failed, models.FailedToken{Token: token, Error: suppressedError})
			continue
		}
		targets = append(targets, token)
	}
	h.metrics.RecordSuppressed(suppressed)
	return targets, failed
}

func sentMessage(count int) string {
	return fmt.Sprintf("Sent %d notifications successfully", count)
}
