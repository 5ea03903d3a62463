package payment

import (
	"encoding/json"

	"bay-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrInvalidSignature = errs.New("invalid stripe webhook signature")

type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment_succeeded"
	EventPaymentFailed    EventKind = "payment_failed"
	EventIgnored          EventKind = "ignored"
)

type WebhookEvent struct {
	ID        string
	Kind      EventKind
	Type      string
	PaymentID string
	BookingID uuid.UUID
	// Reason is Stripe's last payment error message, set for failures.
	Reason string
}

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Parse checks the Stripe-Signature header and decodes payment intent events.
// Events of other types come back as EventIgnored.
func (v *WebhookVerifier) Parse(payload []byte, signature string) (*WebhookEvent, error) {
	if v.secret == "" {
		return nil, errs.Wrap(ErrInvalidSignature, "webhook secret not configured")
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	out := &WebhookEvent{ID: event.ID, Type: string(event.Type), Kind: EventIgnored}
	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		out.Kind = EventPaymentSucceeded
	case stripe.EventTypePaymentIntentPaymentFailed:
		out.Kind = EventPaymentFailed
	default:
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, errs.Wrap(err, "decode payment intent")
	}
	out.PaymentID = pi.ID
	if pi.LastPaymentError != nil {
		out.Reason = pi.LastPaymentError.Msg
	}

	bookingID, err := bookingIDFromMetadata(pi.Metadata)
	if err != nil {
		return nil, errs.Wrapf(err, "payment intent %s", pi.ID)
	}
	out.BookingID = bookingID
	return out, nil
}
