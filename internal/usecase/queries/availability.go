package queries

import (
	"context"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type AvailabilityQueries interface {
	ListBays(ctx context.Context) ([]*BayView, error)
	// Windows lists bookable windows for one bay on a venue-local calendar day.
	Windows(ctx context.Context, bayID int64, date string) ([]*WindowView, error)
}

type BayReadStore interface {
	List(ctx context.Context) ([]*BayView, error)
	FindByID(ctx context.Context, id int64) (*BayView, error)
}

type SlotReadStore interface {
	// ListByBayBetween returns slots starting in [from, to), ordered by start time.
	ListByBayBetween(ctx context.Context, bayID int64, from, to time.Time) ([]*slot.Slot, error)
}

type availabilityQueriesImpl struct {
	bays    BayReadStore
	slots   SlotReadStore
	pricing booking.PriceCalculator
	clock   clock.Clock
	loc     *time.Location
}

func NewAvailabilityQueries(
	bays BayReadStore,
	slots SlotReadStore,
	pricing booking.PriceCalculator,
	clk clock.Clock,
	loc *time.Location,
) AvailabilityQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityQueriesImpl{
		bays:    bays,
		slots:   slots,
		pricing: pricing,
		clock:   clk,
		loc:     loc,
	}
}

func (q *availabilityQueriesImpl) ListBays(ctx context.Context) ([]*BayView, error) {
	bays, err := q.bays.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return bays, nil
}

func (q *availabilityQueriesImpl) Windows(ctx context.Context, bayID int64, date string) ([]*WindowView, error) {
	day, err := time.ParseInLocation(dateLayout, date, q.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := q.bays.FindByID(ctx, bayID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBayNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	slots, err := q.slots.ListByBayBetween(ctx, bayID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	available := make([]*slot.Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsAvailable() {
			available = append(available, s)
		}
	}

	now := q.clock.Now()
	views := make([]*WindowView, 0, len(available)*slot.MaxWindowSlots)
	for w := range slot.Windows(available) {
		// Same rule as Reserve: a slot starting now has started.
		if !w.StartTime.After(now) {
			continue
		}
		quote := q.pricing.Quote(w, 0)
		views = append(views, &WindowView{
			BayID:      w.BayID,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
			SlotIDs:    w.SlotIDs,
			Hours:      w.Hours(),
			PriceCents: quote.Amount.Cents(),
		})
	}
	return views, nil
}
