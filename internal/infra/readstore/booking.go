package readstore

import (
	"context"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/infra"
	"bay-booking/internal/infra/repository/converter"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
	"bay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByPaymentID(ctx context.Context, db sqlc.DBTX, paymentID pgtype.Text) (sqlc.Bookings, error)
	GetBookingsByUserIDFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserIDFirstPageParams) ([]sqlc.Bookings, error)
	GetBookingsByUserIDKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserIDKeysetParams) ([]sqlc.Bookings, error)
	GetBookingSlotsByBookingIDs(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.GetBookingSlotsByBookingIDsRow, error)
	GetStalePendingBookingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStalePendingBookingIDsParams) ([]uuid.UUID, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "failed to find booking by ID")
	}
	return r.withSlots(ctx, row)
}

func (r *BookingReadStore) FindByPaymentID(ctx context.Context, paymentID string) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByPaymentID(ctx, r.db, pgconv.StringToPgtype(paymentID))
	if err != nil {
		return nil, wrapFindErr(err, "failed to find booking by payment ID")
	}
	return r.withSlots(ctx, row)
}

// FindByUserID pages newest first. A nil cursor starts from the top.
func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, after *queries.Cursor, limit int32) ([]*queries.BookingView, error) {
	var (
		rows []sqlc.Bookings
		err  error
	)
	if after == nil {
		rows, err = r.queries.GetBookingsByUserIDFirstPage(ctx, r.db, sqlc.GetBookingsByUserIDFirstPageParams{
			UserID: pgconv.UUIDToPgtype(userID),
			Limit:  limit,
		})
	} else {
		rows, err = r.queries.GetBookingsByUserIDKeyset(ctx, r.db, sqlc.GetBookingsByUserIDKeysetParams{
			UserID:      pgconv.UUIDToPgtype(userID),
			BookingTime: pgconv.TimeToPgtype(after.BookingTime),
			ID:          after.ID,
			Lim:         limit,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	if len(rows) == 0 {
		return []*queries.BookingView{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	slotRows, err := r.queries.GetBookingSlotsByBookingIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking slots", err)
	}
	byBooking := groupSlots(slotRows)

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row, byBooking[row.ID])
	}
	return result, nil
}

// FindDomainByID loads the aggregate for command-side checks.
func (r *BookingReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr(err, "failed to find booking by ID")
	}
	slotRows, err := r.queries.GetBookingSlotsByBookingIDs(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking slots", err)
	}

	b, err := converter.BookingToDomain(row, slotRows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func (r *BookingReadStore) StalePendingIDs(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.GetStalePendingBookingIDs(ctx, r.db, sqlc.GetStalePendingBookingIDsParams{
		BookingTime: pgconv.TimeToPgtype(cutoff),
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stale pending bookings", err)
	}
	return ids, nil
}

func (r *BookingReadStore) withSlots(ctx context.Context, row sqlc.Bookings) (*queries.BookingView, error) {
	slotRows, err := r.queries.GetBookingSlotsByBookingIDs(ctx, r.db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking slots", err)
	}
	return toBookingView(row, slotRows), nil
}

func wrapFindErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking not found", err)
	}
	return infra.WrapRepoErr(msg, err)
}

func groupSlots(rows []sqlc.GetBookingSlotsByBookingIDsRow) map[uuid.UUID][]sqlc.GetBookingSlotsByBookingIDsRow {
	out := make(map[uuid.UUID][]sqlc.GetBookingSlotsByBookingIDsRow)
	for _, row := range rows {
		out[row.BookingID] = append(out[row.BookingID], row)
	}
	return out
}

// Slot rows arrive ordered by position.
func toBookingView(row sqlc.Bookings, slotRows []sqlc.GetBookingSlotsByBookingIDsRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:             row.ID,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:      pgconv.StringPtrFromPgtype(row.GuestName),
		GuestEmail:     pgconv.StringPtrFromPgtype(row.GuestEmail),
		GuestPhone:     pgconv.StringPtrFromPgtype(row.GuestPhone),
		Status:         row.Status,
		BookingTime:    pgconv.TimeFromPgtype(row.BookingTime),
		PaymentID:      pgconv.StringPtrFromPgtype(row.PaymentID),
		AmountCents:    row.AmountCents,
		AllowanceHours: int(row.AllowanceHours),
		Slots:          make([]queries.BookingSlotView, len(slotRows)),
		CancelledAt:    pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	for i, s := range slotRows {
		view.Slots[i] = queries.BookingSlotView{
			SlotID:    s.SlotID,
			StartTime: pgconv.TimeFromPgtype(s.StartTime),
			EndTime:   pgconv.TimeFromPgtype(s.EndTime),
		}
	}
	if n := len(slotRows); n > 0 {
		view.BayID = slotRows[0].BayID
		view.BayName = slotRows[0].BayName
		view.StartTime = pgconv.TimeFromPgtype(slotRows[0].StartTime)
		view.EndTime = pgconv.TimeFromPgtype(slotRows[n-1].EndTime)
	}
	return view
}
