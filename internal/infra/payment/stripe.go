package payment

import (
	"context"
	"log/slog"
	"strings"

	"bay-booking/internal/pkg/config"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const metadataBookingID = "booking_id"

var ErrPaymentNotConfigured = errs.New("stripe secret key is not configured")

type intentBackend interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type refundBackend interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeGateway struct {
	intents  intentBackend
	refunds  refundBackend
	currency string
}

func NewStripeGateway(stripeCfg config.StripeConfig, bookingCfg config.BookingConfig) *StripeGateway {
	var intents intentBackend
	var refunds refundBackend
	if stripeCfg.SecretKey != "" {
		sc := client.New(stripeCfg.SecretKey, nil)
		intents = sc.PaymentIntents
		refunds = sc.Refunds
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set; only free bookings can be checked out")
	}
	return &StripeGateway{
		intents:  intents,
		refunds:  refunds,
		currency: strings.ToLower(bookingCfg.Currency),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
	if req.AmountCents <= 0 {
		return &commands.PaymentIntent{ID: "", ClientSecret: nil, AmountCents: 0}, nil
	}
	if g.intents == nil {
		return nil, ErrPaymentNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.ReceiptEmail != nil {
		params.ReceiptEmail = req.ReceiptEmail
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, req.BookingID.String())
	// One intent per booking even if the request is replayed.
	params.SetIdempotencyKey("booking-intent-" + req.BookingID.String())

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, errs.Wrapf(err, "create payment intent for booking %s", req.BookingID)
	}

	secret := pi.ClientSecret
	return &commands.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: &secret,
		AmountCents:  pi.Amount,
	}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, paymentID string) error {
	if g.refunds == nil {
		return ErrPaymentNotConfigured
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentID),
	}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + paymentID)

	if _, err := g.refunds.New(params); err != nil {
		return errs.Wrapf(err, "refund payment %s", paymentID)
	}
	return nil
}

func (g *StripeGateway) PaymentSucceeded(ctx context.Context, paymentID string) (bool, uuid.UUID, error) {
	if g.intents == nil {
		return false, uuid.Nil, ErrPaymentNotConfigured
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.intents.Get(paymentID, params)
	if err != nil {
		return false, uuid.Nil, errs.Wrapf(err, "retrieve payment intent %s", paymentID)
	}

	bookingID, err := bookingIDFromMetadata(pi.Metadata)
	if err != nil {
		return false, uuid.Nil, errs.Wrapf(err, "payment intent %s", paymentID)
	}
	return pi.Status == stripe.PaymentIntentStatusSucceeded, bookingID, nil
}

func bookingIDFromMetadata(md map[string]string) (uuid.UUID, error) {
	raw, ok := md[metadataBookingID]
	if !ok {
		return uuid.Nil, errs.New("missing booking_id metadata")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid booking_id metadata")
	}
	return id, nil
}
