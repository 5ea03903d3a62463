package repository

import (
	"context"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/infra"
	"bay-booking/internal/infra/repository/converter"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingSlotsParams) error
	AddConfirmedBookingAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.AddConfirmedBookingAmountParams) (int64, error)
	TransitionBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	if err := r.queries.CreateBookingSlots(ctx, r.db, converter.BookingSlotsParams(b.ID(), b.Slots(), 0)); err != nil {
		return infra.WrapRepoErr("failed to link booking slots", err)
	}

	return nil
}

func (r *BookingRepository) AttachSlots(
	ctx context.Context,
	bookingID uuid.UUID,
	refs []booking.SlotRef,
	firstPosition int,
	extraCents int64,
	at time.Time,
) (int64, error) {
	// The amount update doubles as the "still confirmed" guard.
	n, err := r.queries.AddConfirmedBookingAmount(ctx, r.db, sqlc.AddConfirmedBookingAmountParams{
		ExtraCents: extraCents,
		ChangedAt:  pgconv.TimeToPgtype(at),
		ID:         bookingID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to extend booking amount", err)
	}
	if n == 0 {
		return 0, nil
	}

	if err := r.queries.CreateBookingSlots(ctx, r.db, converter.BookingSlotsParams(bookingID, refs, firstPosition)); err != nil {
		return 0, infra.WrapRepoErr("failed to link extension slots", err)
	}

	return n, nil
}

func (r *BookingRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to booking.Status,
	paymentID *string,
	at time.Time,
) (int64, error) {
	n, err := r.queries.TransitionBookingStatus(ctx, r.db, sqlc.TransitionBookingStatusParams{
		ToStatus:   to.String(),
		PaymentID:  pgconv.StringPtrToPgtype(paymentID),
		ChangedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to transition booking status", err)
	}
	return n, nil
}
