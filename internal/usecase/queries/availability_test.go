//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/queries"
	"bay-booking/tests/common/builder"
	queriesmock "bay-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	loc      *time.Location
	clk      *clock.MockClock
	mockCtrl *gomock.Controller
	bays     *queriesmock.MockBayReadStore
	slots    *queriesmock.MockSlotReadStore
	queries  queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	var err error
	s.loc, err = time.LoadLocation("Europe/London")
	s.Require().NoError(err)
	s.clk = clock.NewMockClock(time.Date(2026, 7, 1, 6, 0, 0, 0, s.loc))
	s.mockCtrl = gomock.NewController(s.T())
	s.bays = queriesmock.NewMockBayReadStore(s.mockCtrl)
	s.slots = queriesmock.NewMockSlotReadStore(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.bays, s.slots, booking.NewHourlyPriceCalculator(4500), s.clk, s.loc)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestWindows_GroupsAndPrices() {
	dayStart := time.Date(2026, 7, 1, 0, 0, 0, 0, s.loc)
	run := builder.NewSlotBuilder().WithStart(time.Date(2026, 7, 1, 10, 0, 0, 0, s.loc)).BuildRun(3)

	s.bays.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.BayView{ID: 1, Name: "Bay 1"}, nil)
	s.slots.EXPECT().ListByBayBetween(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, from, to time.Time) ([]*slot.Slot, error) {
			s.True(from.Equal(dayStart), "from %s", from)
			s.True(to.Equal(dayStart.AddDate(0, 0, 1)), "to %s", to)
			return run, nil
		})

	got, err := s.queries.Windows(s.ctx, 1, "2026-07-01")
	s.Require().NoError(err)

	at := func(h int) time.Time { return time.Date(2026, 7, 1, h, 0, 0, 0, s.loc) }
	a, b, c := run[0].ID(), run[1].ID(), run[2].ID()
	want := []*queries.WindowView{
		{BayID: 1, StartTime: at(10), EndTime: at(11), SlotIDs: []int64{a}, Hours: 1, PriceCents: 4500},
		{BayID: 1, StartTime: at(10), EndTime: at(12), SlotIDs: []int64{a, b}, Hours: 2, PriceCents: 9000},
		{BayID: 1, StartTime: at(10), EndTime: at(13), SlotIDs: []int64{a, b, c}, Hours: 3, PriceCents: 13500},
		{BayID: 1, StartTime: at(11), EndTime: at(12), SlotIDs: []int64{b}, Hours: 1, PriceCents: 4500},
		{BayID: 1, StartTime: at(11), EndTime: at(13), SlotIDs: []int64{b, c}, Hours: 2, PriceCents: 9000},
		{BayID: 1, StartTime: at(12), EndTime: at(13), SlotIDs: []int64{c}, Hours: 1, PriceCents: 4500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

func (s *AvailabilityQueriesTestSuite) TestWindows_SkipsBookedAndPast() {
	run := builder.NewSlotBuilder().WithStart(time.Date(2026, 7, 1, 5, 0, 0, 0, s.loc)).BuildRun(4)
	// 05:00 has started, 06:00 is booked, leaving 07:00 and 08:00.
	run[1] = builder.NewSlotBuilder().WithID(run[1].ID()).WithStart(run[1].Start()).AsBooked().BuildDomain()

	s.bays.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.BayView{ID: 1}, nil)
	s.slots.EXPECT().ListByBayBetween(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(run, nil)

	got, err := s.queries.Windows(s.ctx, 1, "2026-07-01")
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	for _, w := range got {
		s.False(w.StartTime.Before(s.clk.Now()))
		s.NotContains(w.SlotIDs, run[1].ID())
	}
	s.Equal([]int64{run[2].ID(), run[3].ID()}, got[1].SlotIDs)
}

func (s *AvailabilityQueriesTestSuite) TestWindows_SlotStartingNowIsNotOffered() {
	// The clock sits at 06:00, exactly when the first slot begins.
	run := builder.NewSlotBuilder().WithStart(s.clk.Now()).BuildRun(2)

	s.bays.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.BayView{ID: 1}, nil)
	s.slots.EXPECT().ListByBayBetween(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(run, nil)

	got, err := s.queries.Windows(s.ctx, 1, "2026-07-01")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal([]int64{run[1].ID()}, got[0].SlotIDs)
	s.True(run[0].HasStarted(s.clk.Now()))
}

func (s *AvailabilityQueriesTestSuite) TestWindows_Errors() {
	s.Run("malformed date", func() {
		_, err := s.queries.Windows(s.ctx, 1, "01/07/2026")
		s.True(errs.Is(err, queries.ErrInvalidDate))
	})

	s.Run("unknown bay", func() {
		s.bays.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, infra.NewRepoErr(infra.KindNotFound, "bay not found"))
		_, err := s.queries.Windows(s.ctx, 9, "2026-07-01")
		s.True(errs.Is(err, queries.ErrBayNotFound))
	})

	s.Run("slot read failure", func() {
		s.bays.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.BayView{ID: 1}, nil)
		s.slots.EXPECT().ListByBayBetween(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
		_, err := s.queries.Windows(s.ctx, 1, "2026-07-01")
		s.True(errs.Is(err, queries.ErrReadFailed))
	})

	s.Run("empty day", func() {
		s.bays.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.BayView{ID: 1}, nil)
		s.slots.EXPECT().ListByBayBetween(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return([]*slot.Slot{}, nil)
		got, err := s.queries.Windows(s.ctx, 1, "2026-07-01")
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *AvailabilityQueriesTestSuite) TestListBays() {
	bays := []*queries.BayView{{ID: 1, Name: "Bay 1", Capacity: 4}, {ID: 2, Name: "Bay 2", Capacity: 6}}
	s.bays.EXPECT().List(gomock.Any()).Return(bays, nil)

	got, err := s.queries.ListBays(s.ctx)
	s.Require().NoError(err)
	s.Equal(bays, got)

	s.bays.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = s.queries.ListBays(s.ctx)
	s.True(errs.Is(err, queries.ErrReadFailed))
}
