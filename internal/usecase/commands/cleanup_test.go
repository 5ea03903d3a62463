//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/usecase/commands"
	"bay-booking/tests/common/memstore"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*memstore.Store, commands.BookingCommands, commands.CleanupCommands) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		ctrl := gomock.NewController(t)
		settings := commands.BookingSettings{PendingTTL: 15 * time.Minute}
		bookings := commands.NewBookingCommands(store, commandsmock.NewMockPaymentGateway(ctrl), booking.NewHourlyPriceCalculator(hourlyRate), clk, settings)
		return store, bookings, commands.NewCleanupCommands(store, clk, settings)
	}

	guest := func(t *testing.T) booking.Customer {
		g, err := booking.NewGuestContact("Pat", "pat@example.com", "")
		require.NoError(t, err)
		return booking.NewGuestCustomer(g)
	}

	t.Run("stale holds are released and others are left alone", func(t *testing.T) {
		store, bookings, cleanup := setup(t)
		ids := store.AddHourlySlots(1, now.Add(48*time.Hour), 3)

		stale, err := bookings.Reserve(ctx, ids[:1], guest(t))
		require.NoError(t, err)
		store.AgeBooking(stale.BookingID, 20*time.Minute)

		fresh, err := bookings.Reserve(ctx, ids[1:2], guest(t))
		require.NoError(t, err)
		store.AgeBooking(fresh.BookingID, 5*time.Minute)

		paid, err := bookings.Reserve(ctx, ids[2:], guest(t))
		require.NoError(t, err)
		_, err = bookings.Confirm(ctx, paid.BookingID, strPtr("pi_paid"))
		require.NoError(t, err)
		store.AgeBooking(paid.BookingID, time.Hour)

		cleaned, err := cleanup.Expire(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, cleaned)

		assert.Equal(t, booking.StatusCancelled, store.Booking(stale.BookingID).Status())
		assert.Equal(t, slot.StatusAvailable, store.SlotStatus(ids[0]))
		assert.Equal(t, booking.StatusPending, store.Booking(fresh.BookingID).Status())
		assert.Equal(t, slot.StatusBooked, store.SlotStatus(ids[1]))
		assert.Equal(t, booking.StatusConfirmed, store.Booking(paid.BookingID).Status())
		assert.Equal(t, slot.StatusBooked, store.SlotStatus(ids[2]))

		again, err := cleanup.Expire(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, again)
	})

	t.Run("two abandoned holds are both reclaimed", func(t *testing.T) {
		store, bookings, cleanup := setup(t)
		ids := store.AddHourlySlots(1, now.Add(48*time.Hour), 2)

		var held []uuid.UUID
		for _, id := range ids {
			res, err := bookings.Reserve(ctx, []int64{id}, guest(t))
			require.NoError(t, err)
			store.AgeBooking(res.BookingID, 20*time.Minute)
			held = append(held, res.BookingID)
		}

		cleaned, err := cleanup.Expire(ctx, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 2, cleaned)
		for i, bookingID := range held {
			assert.Equal(t, booking.StatusCancelled, store.Booking(bookingID).Status())
			assert.Equal(t, slot.StatusAvailable, store.SlotStatus(ids[i]))
		}
	})

	t.Run("explicit threshold overrides the default", func(t *testing.T) {
		store, bookings, cleanup := setup(t)
		ids := store.AddHourlySlots(1, now.Add(48*time.Hour), 1)

		res, err := bookings.Reserve(ctx, ids, guest(t))
		require.NoError(t, err)
		store.AgeBooking(res.BookingID, 20*time.Minute)

		cleaned, err := cleanup.Expire(ctx, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, cleaned)
		assert.Equal(t, booking.StatusPending, store.Booking(res.BookingID).Status())
	})

	t.Run("membership hours come back", func(t *testing.T) {
		store, bookings, cleanup := setup(t)
		ids := store.AddHourlySlots(1, now.Add(48*time.Hour), 2)
		userID := uuid.New()
		store.PutMembership(userID, 10, 1, now.Add(30*24*time.Hour))

		res, err := bookings.Reserve(ctx, ids, booking.NewMemberCustomer(userID))
		require.NoError(t, err)
		require.Equal(t, 0, store.HoursRemaining(userID))
		store.AgeBooking(res.BookingID, time.Hour)

		cleaned, err := cleanup.Expire(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, cleaned)
		assert.Equal(t, 1, store.HoursRemaining(userID))
	})

	t.Run("cancelled context stops early", func(t *testing.T) {
		store, bookings, cleanup := setup(t)
		ids := store.AddHourlySlots(1, now.Add(48*time.Hour), 1)
		res, err := bookings.Reserve(ctx, ids, guest(t))
		require.NoError(t, err)
		store.AgeBooking(res.BookingID, time.Hour)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		cleaned, err := cleanup.Expire(cancelled, 0)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, cleaned)
		assert.Equal(t, booking.StatusPending, store.Booking(res.BookingID).Status())
	})
}
