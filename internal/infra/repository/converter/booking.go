package converter

import (
	"bay-booking/internal/domain/booking"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	params := sqlc.CreateBookingParams{
		ID:             b.ID(),
		UserID:         pgconv.UUIDPtrToPgtype(b.UserID()),
		Status:         b.Status().String(),
		BookingTime:    pgconv.TimeToPgtype(b.BookingTime()),
		PaymentID:      pgconv.StringPtrToPgtype(b.PaymentID()),
		AmountCents:    b.Amount().Cents(),
		AllowanceHours: int32(b.AllowanceHours()),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	}

	if guest := b.Customer().Guest(); guest != nil {
		params.GuestName = pgconv.StringToPgtype(guest.Name())
		params.GuestEmail = pgconv.StringToPgtype(guest.Email().Value())
		params.GuestPhone = pgconv.OptionalStringToPgtype(guest.Phone())
	}

	return params
}

// BookingSlotsParams numbers refs from firstPosition onwards.
func BookingSlotsParams(bookingID uuid.UUID, refs []booking.SlotRef, firstPosition int) sqlc.CreateBookingSlotsParams {
	params := sqlc.CreateBookingSlotsParams{
		BookingID: bookingID,
		SlotIds:   make([]int64, len(refs)),
		Positions: make([]int32, len(refs)),
	}
	for i, ref := range refs {
		params.SlotIds[i] = ref.SlotID
		params.Positions[i] = int32(firstPosition + i)
	}
	return params
}

func CustomerFromRow(row sqlc.Bookings) (booking.Customer, error) {
	if id := pgconv.UUIDPtrFromPgtype(row.UserID); id != nil {
		return booking.NewMemberCustomer(*id), nil
	}
	guest, err := booking.NewGuestContact(row.GuestName.String, row.GuestEmail.String, row.GuestPhone.String)
	if err != nil {
		return booking.Customer{}, errs.Wrapf(err, "booking %s guest contact", row.ID)
	}
	return booking.NewGuestCustomer(guest), nil
}

func BookingToDomain(row sqlc.Bookings, slots []sqlc.GetBookingSlotsByBookingIDsRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	customer, err := CustomerFromRow(row)
	if err != nil {
		return nil, err
	}

	refs := make([]booking.SlotRef, 0, len(slots))
	for _, s := range slots {
		refs = append(refs, booking.SlotRef{
			SlotID: s.SlotID,
			BayID:  s.BayID,
			Start:  pgconv.TimeFromPgtype(s.StartTime),
			End:    pgconv.TimeFromPgtype(s.EndTime),
		})
	}

	return booking.ReconstructBooking(
		row.ID,
		customer,
		status,
		pgconv.TimeFromPgtype(row.BookingTime),
		pgconv.StringPtrFromPgtype(row.PaymentID),
		booking.NewMoney(row.AmountCents),
		int(row.AllowanceHours),
		refs,
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
