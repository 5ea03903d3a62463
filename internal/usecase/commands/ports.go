package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentIntentRequest struct {
	BookingID    uuid.UUID
	AmountCents  int64
	Description  string
	ReceiptEmail *string
}

type PaymentIntent struct {
	ID           string
	ClientSecret *string
	AmountCents  int64
}

// PaymentGateway is the external card processor.
type PaymentGateway interface {
	// CreateIntent returns a nil ClientSecret for a zero amount.
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	Refund(ctx context.Context, paymentID string) error
	// PaymentSucceeded reports whether the payment settled and which booking it was created for.
	PaymentSucceeded(ctx context.Context, paymentID string) (bool, uuid.UUID, error)
}

type BookingSettings struct {
	PendingTTL   time.Duration
	RefundWindow time.Duration
	ExtendGrace  time.Duration
}

const (
	DefaultPendingTTL  = 15 * time.Minute
	DefaultExtendGrace = 10 * time.Minute
	expireBatchSize    = 500
)

func (s BookingSettings) withDefaults() BookingSettings {
	if s.PendingTTL <= 0 {
		s.PendingTTL = DefaultPendingTTL
	}
	if s.ExtendGrace <= 0 {
		s.ExtendGrace = DefaultExtendGrace
	}
	return s
}
