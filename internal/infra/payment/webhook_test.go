//go:build unit

package payment

import (
	"fmt"
	"testing"

	"bay-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test"

func signed(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  testWebhookSecret,
	})
	return sp.Header, sp.Payload
}

func intentEvent(eventType, intentID string, metadata string) string {
	return fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": %q,
		"data": {"object": {
			"id": %q,
			"object": "payment_intent",
			"status": "succeeded",
			"metadata": %s,
			"last_payment_error": {"message": "Your card was declined."}
		}}
	}`, eventType, intentID, metadata)
}

func TestWebhookVerifier_Parse(t *testing.T) {
	v := NewWebhookVerifier(testWebhookSecret)
	bookingID := uuid.New()
	md := fmt.Sprintf(`{"booking_id": %q}`, bookingID)

	t.Run("payment succeeded", func(t *testing.T) {
		header, body := signed(t, intentEvent("payment_intent.succeeded", "pi_1", md))
		ev, err := v.Parse(body, header)
		require.NoError(t, err)
		assert.Equal(t, EventPaymentSucceeded, ev.Kind)
		assert.Equal(t, "pi_1", ev.PaymentID)
		assert.Equal(t, bookingID, ev.BookingID)
	})

	t.Run("payment failed keeps reason", func(t *testing.T) {
		header, body := signed(t, intentEvent("payment_intent.payment_failed", "pi_2", md))
		ev, err := v.Parse(body, header)
		require.NoError(t, err)
		assert.Equal(t, EventPaymentFailed, ev.Kind)
		assert.Equal(t, "Your card was declined.", ev.Reason)
	})

	t.Run("other events are ignored", func(t *testing.T) {
		header, body := signed(t, `{"id":"evt_2","object":"event","type":"customer.created","data":{"object":{"id":"cus_1"}}}`)
		ev, err := v.Parse(body, header)
		require.NoError(t, err)
		assert.Equal(t, EventIgnored, ev.Kind)
		assert.Equal(t, "customer.created", ev.Type)
	})

	t.Run("tampered body", func(t *testing.T) {
		header, _ := signed(t, intentEvent("payment_intent.succeeded", "pi_1", md))
		_, err := v.Parse([]byte(intentEvent("payment_intent.succeeded", "pi_evil", md)), header)
		assert.True(t, errs.Is(err, ErrInvalidSignature))
	})

	t.Run("missing booking metadata", func(t *testing.T) {
		header, body := signed(t, intentEvent("payment_intent.succeeded", "pi_3", `{}`))
		_, err := v.Parse(body, header)
		assert.Error(t, err)
		assert.False(t, errs.Is(err, ErrInvalidSignature))
	})

	t.Run("unconfigured secret", func(t *testing.T) {
		header, body := signed(t, intentEvent("payment_intent.succeeded", "pi_1", md))
		_, err := NewWebhookVerifier("").Parse(body, header)
		assert.True(t, errs.Is(err, ErrInvalidSignature))
	})
}
