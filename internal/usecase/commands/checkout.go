package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	BookingID    uuid.UUID
	Quote        booking.Quote
	PaymentID    *string
	ClientSecret *string
	// Free is set when membership hours covered everything and the booking is already confirmed.
	Free bool
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, slotIDs []int64, customer booking.Customer) (*CheckoutResult, error)
	// ConfirmPayment is the client-side completion path; the payment is verified with the gateway first.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentID string) (*ConfirmResult, error)
	// HandlePaymentSucceeded is the webhook path; the event is already authenticated.
	HandlePaymentSucceeded(ctx context.Context, bookingID uuid.UUID, paymentID string) (*ConfirmResult, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	bookings BookingCommands
	payments PaymentGateway
	clock    clock.Clock
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	bookings BookingCommands,
	payments PaymentGateway,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:      uow,
		bookings: bookings,
		payments: payments,
		clock:    clk,
	}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, slotIDs []int64, customer booking.Customer) (*CheckoutResult, error) {
	reserved, err := uc.bookings.Reserve(ctx, slotIDs, customer)
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{BookingID: reserved.BookingID, Quote: reserved.Quote}

	if reserved.Quote.IsFree() {
		if _, err := uc.bookings.Confirm(ctx, reserved.BookingID, nil); err != nil {
			return nil, err
		}
		result.Free = true
		return result, nil
	}

	intent, err := uc.payments.CreateIntent(ctx, PaymentIntentRequest{
		BookingID:    reserved.BookingID,
		AmountCents:  reserved.Quote.Amount.Cents(),
		Description:  describeWindow(reserved),
		ReceiptEmail: receiptEmail(customer),
	})
	if err != nil {
		slog.Error("failed to create payment intent",
			"booking_id", reserved.BookingID,
			"error", err)
		uc.abandon(ctx, reserved.BookingID)
		return nil, errs.Mark(err, ErrPaymentFailed)
	}

	result.PaymentID = &intent.ID
	result.ClientSecret = intent.ClientSecret
	return result, nil
}

func (uc *checkoutUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentID string) (*ConfirmResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, invalid("paymentId is required")
	}

	succeeded, paidFor, err := uc.payments.PaymentSucceeded(ctx, paymentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailed)
	}
	if paidFor != bookingID {
		return nil, invalid("payment does not belong to this booking")
	}
	if !succeeded {
		return nil, errs.Wrap(ErrPaymentFailed, "payment has not succeeded")
	}

	return uc.bookings.Confirm(ctx, bookingID, &paymentID)
}

func (uc *checkoutUseCaseImpl) HandlePaymentSucceeded(ctx context.Context, bookingID uuid.UUID, paymentID string) (*ConfirmResult, error) {
	if bookingID == uuid.Nil || paymentID == "" {
		return nil, invalid("payment event is missing booking or payment id")
	}
	return uc.bookings.Confirm(ctx, bookingID, &paymentID)
}

// abandon releases the hold right away so the slots do not wait for the cleanup job.
func (uc *checkoutUseCaseImpl) abandon(ctx context.Context, bookingID uuid.UUID) {
	now := uc.clock.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := releaseHold(ctx, tx, bookingID, func(*booking.Booking) bool { return true }, now)
		return err
	})
	if err != nil {
		slog.Error("failed to release hold after payment failure",
			"booking_id", bookingID,
			"error", err)
	}
}

func describeWindow(r *ReserveResult) string {
	return fmt.Sprintf("Bay %d, %s (%dh)",
		r.Window.BayID,
		r.Window.StartTime.UTC().Format("2006-01-02 15:04 MST"),
		r.Quote.Hours)
}

func receiptEmail(c booking.Customer) *string {
	if c.Guest() == nil {
		return nil
	}
	email := c.Guest().Email().Value()
	return &email
}
