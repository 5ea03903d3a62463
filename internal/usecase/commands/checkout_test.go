//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/tests/common/memstore"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	store    *memstore.Store
	mockCtrl *gomock.Controller
	payments *commandsmock.MockPaymentGateway
	checkout commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(s.now)
	s.store = memstore.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.payments = commandsmock.NewMockPaymentGateway(s.mockCtrl)

	settings := commands.BookingSettings{PendingTTL: 15 * time.Minute, RefundWindow: 24 * time.Hour}
	bookings := commands.NewBookingCommands(s.store, s.payments, booking.NewHourlyPriceCalculator(hourlyRate), clk, settings)
	s.checkout = commands.NewCheckoutCommands(s.store, bookings, s.payments, clk)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) guest() booking.Customer {
	g, err := booking.NewGuestContact("Sam Guest", "Sam@Example.com", "")
	s.Require().NoError(err)
	return booking.NewGuestCustomer(g)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_CreatesPaymentIntent() {
	ids := s.store.AddHourlySlots(1, s.now.Add(48*time.Hour), 2)
	secret := "pi_1_secret_abc"

	s.payments.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
			s.Equal(int64(2*hourlyRate), req.AmountCents)
			s.NotEqual(uuid.Nil, req.BookingID)
			s.Require().NotNil(req.ReceiptEmail)
			s.Equal("sam@example.com", *req.ReceiptEmail)
			s.Contains(req.Description, "Bay 1")
			return &commands.PaymentIntent{ID: "pi_1", ClientSecret: &secret, AmountCents: req.AmountCents}, nil
		}).Times(1)

	res, err := s.checkout.Checkout(s.ctx, ids, s.guest())
	s.Require().NoError(err)
	s.False(res.Free)
	s.Equal("pi_1", *res.PaymentID)
	s.Equal(secret, *res.ClientSecret)

	b := s.store.Booking(res.BookingID)
	s.Equal(booking.StatusPending, b.Status())
	s.Nil(b.PaymentID(), "payment id is attached on confirmation")
}

func (s *CheckoutCommandsTestSuite) TestCheckout_FreeBookingConfirmsImmediately() {
	ids := s.store.AddHourlySlots(1, s.now.Add(48*time.Hour), 1)
	userID := uuid.New()
	s.store.PutMembership(userID, 8, 8, s.now.Add(30*24*time.Hour))

	res, err := s.checkout.Checkout(s.ctx, ids, booking.NewMemberCustomer(userID))
	s.Require().NoError(err)
	s.True(res.Free)
	s.Nil(res.PaymentID)
	s.Nil(res.ClientSecret)

	b := s.store.Booking(res.BookingID)
	s.Equal(booking.StatusConfirmed, b.Status())
	s.Equal(7, s.store.HoursRemaining(userID))
	s.Len(s.store.Jobs("booking_confirmed"), 1)
}

func (s *CheckoutCommandsTestSuite) TestCheckout_IntentFailureReleasesHold() {
	ids := s.store.AddHourlySlots(1, s.now.Add(48*time.Hour), 1)

	s.payments.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("card processor unavailable")).Times(1)

	res, err := s.checkout.Checkout(s.ctx, ids, s.guest())
	s.Nil(res)
	s.True(errs.Is(err, commands.ErrPaymentFailed))
	s.Equal(slot.StatusAvailable, s.store.SlotStatus(ids[0]))
	s.Equal(1, s.store.BookingCount())
}

func (s *CheckoutCommandsTestSuite) TestCheckout_ReserveErrorPassesThrough() {
	_, err := s.checkout.Checkout(s.ctx, []int64{999}, s.guest())
	s.True(errs.Is(err, commands.ErrSlotNotFound))
}

func (s *CheckoutCommandsTestSuite) reservePending() uuid.UUID {
	ids := s.store.AddHourlySlots(1, s.now.Add(48*time.Hour), 1)
	secret := "secret"
	s.payments.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		Return(&commands.PaymentIntent{ID: "pi_pending", ClientSecret: &secret}, nil).Times(1)
	res, err := s.checkout.Checkout(s.ctx, ids, s.guest())
	s.Require().NoError(err)
	return res.BookingID
}

func (s *CheckoutCommandsTestSuite) TestConfirmPayment() {
	s.Run("verified payment confirms", func() {
		id := s.reservePending()
		s.payments.EXPECT().PaymentSucceeded(gomock.Any(), "pi_pending").Return(true, id, nil).Times(1)

		res, err := s.checkout.ConfirmPayment(s.ctx, id, " pi_pending ")
		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal("pi_pending", *s.store.Booking(id).PaymentID())
	})

	s.Run("payment for a different booking", func() {
		id := s.reservePending()
		s.payments.EXPECT().PaymentSucceeded(gomock.Any(), "pi_other").Return(true, uuid.New(), nil).Times(1)

		_, err := s.checkout.ConfirmPayment(s.ctx, id, "pi_other")
		s.True(errs.Is(err, commands.ErrValidation))
		s.Equal(booking.StatusPending, s.store.Booking(id).Status())
	})

	s.Run("payment not settled", func() {
		id := s.reservePending()
		s.payments.EXPECT().PaymentSucceeded(gomock.Any(), "pi_wait").Return(false, id, nil).Times(1)

		_, err := s.checkout.ConfirmPayment(s.ctx, id, "pi_wait")
		s.True(errs.Is(err, commands.ErrPaymentFailed))
	})

	s.Run("gateway error", func() {
		s.payments.EXPECT().PaymentSucceeded(gomock.Any(), "pi_err").Return(false, uuid.Nil, errors.New("boom")).Times(1)

		_, err := s.checkout.ConfirmPayment(s.ctx, uuid.New(), "pi_err")
		s.True(errs.Is(err, commands.ErrPaymentFailed))
	})

	s.Run("missing payment id", func() {
		_, err := s.checkout.ConfirmPayment(s.ctx, uuid.New(), "  ")
		s.True(errs.Is(err, commands.ErrValidation))
	})
}

func (s *CheckoutCommandsTestSuite) TestHandlePaymentSucceeded() {
	id := s.reservePending()

	first, err := s.checkout.HandlePaymentSucceeded(s.ctx, id, "pi_webhook")
	s.Require().NoError(err)
	s.False(first.Replayed)

	again, err := s.checkout.HandlePaymentSucceeded(s.ctx, id, "pi_webhook")
	s.Require().NoError(err)
	s.True(again.Replayed)
	s.Len(s.store.Jobs("booking_confirmed"), 1)

	_, err = s.checkout.HandlePaymentSucceeded(s.ctx, uuid.Nil, "pi_webhook")
	s.True(errs.Is(err, commands.ErrValidation))
}
