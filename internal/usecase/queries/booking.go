package queries

import (
	"context"
	"time"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultAwaitAttempts = 5
	DefaultAwaitInterval = 400 * time.Millisecond
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// AwaitByPaymentID polls briefly for the booking a payment settled, since the webhook may land after the redirect.
	AwaitByPaymentID(ctx context.Context, paymentID string) (*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, after *Cursor, limit int32) ([]*BookingView, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*BookingView, error)
}

type PollPolicy struct {
	Attempts int
	Interval time.Duration
}

type bookingQueriesImpl struct {
	repo BookingReadStore
	poll PollPolicy
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return NewBookingQueriesWithPolling(repo, PollPolicy{Attempts: DefaultAwaitAttempts, Interval: DefaultAwaitInterval})
}

func NewBookingQueriesWithPolling(repo BookingReadStore, poll PollPolicy) BookingQueries {
	if poll.Attempts <= 0 {
		poll.Attempts = 1
	}
	return &bookingQueriesImpl{repo: repo, poll: poll}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, ErrBookingNotFound)
	}
	if !actor.CanManage(view.UserID, user.CapViewOwnBookings, user.CapViewAnyBooking) {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = clampLimit(limit)
	// One extra row tells us whether another page exists.
	rows, err := q.repo.FindByUserID(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, errs.Mark(err, ErrReadFailed)
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{BookingTime: last.BookingTime, ID: last.ID}, nil
}

func (q *bookingQueriesImpl) AwaitByPaymentID(ctx context.Context, paymentID string) (*BookingView, error) {
	for attempt := 1; ; attempt++ {
		view, err := q.repo.FindByPaymentID(ctx, paymentID)
		if err == nil {
			return view, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReadFailed)
		}
		if attempt >= q.poll.Attempts {
			return nil, ErrPaymentPending
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.poll.Interval):
		}
	}
}

func mapReadErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, ErrReadFailed)
}
