package api

import (
	"io"
	"log/slog"
	"net/http"

	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/infra/payment"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

type PaymentEventParser interface {
	Parse(payload []byte, signature string) (*payment.WebhookEvent, error)
}

type WebhookHandler struct {
	parser   PaymentEventParser
	checkout commands.CheckoutCommands
}

func NewWebhookHandler(parser PaymentEventParser, checkout commands.CheckoutCommands) *WebhookHandler {
	return &WebhookHandler{parser: parser, checkout: checkout}
}

// @Summary Stripe webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	event, err := h.parser.Parse(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errs.Is(err, payment.ErrInvalidSignature) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
			return
		}
		// Authentic but not ours, e.g. an intent created outside checkout.
		slog.Warn("Ignoring unusable webhook event", "error", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	switch event.Kind {
	case payment.EventPaymentSucceeded:
		result, err := h.checkout.HandlePaymentSucceeded(c.Request.Context(), event.BookingID, event.PaymentID)
		switch {
		case errs.Is(err, commands.ErrInvalidTransition), errs.Is(err, commands.ErrBookingNotFound):
			// Nothing left to confirm; a retry would not change that.
			slog.Warn("Payment event for a booking that cannot be confirmed",
				"event_id", event.ID,
				"booking_id", event.BookingID,
				"payment_id", event.PaymentID,
				"error", err)
		case err != nil:
			// Non-2xx makes Stripe retry the delivery.
			httperr.Abort(c, err)
			return
		default:
			slog.Info("Booking confirmed by webhook",
				"event_id", event.ID,
				"booking_id", result.BookingID,
				"replayed", result.Replayed)
		}
	case payment.EventPaymentFailed:
		slog.Info("Payment failed",
			"event_id", event.ID,
			"booking_id", event.BookingID,
			"payment_id", event.PaymentID,
			"reason", event.Reason)
	default:
		slog.Debug("Ignoring webhook event", "event_id", event.ID, "type", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
