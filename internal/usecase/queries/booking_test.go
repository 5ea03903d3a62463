//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bay-booking/internal/domain/user"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/queries"
	queriesmock "bay-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	repo     *queriesmock.MockBookingReadStore
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.queries = queries.NewBookingQueriesWithPolling(s.repo, queries.PollPolicy{Attempts: 3, Interval: time.Millisecond})
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) actor(role user.Role) user.Actor {
	a, err := user.NewActor(uuid.New(), role)
	s.Require().NoError(err)
	return a
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	owner := s.actor(user.RoleUser)
	ownerID := owner.ID()
	view := &queries.BookingView{ID: uuid.New(), UserID: &ownerID, Status: "confirmed"}
	guestView := &queries.BookingView{ID: uuid.New(), Status: "pending"}

	s.Run("owner sees own booking", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		got, err := s.queries.GetByID(s.ctx, owner, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("another user is forbidden", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		_, err := s.queries.GetByID(s.ctx, s.actor(user.RoleUser), view.ID)
		s.True(errs.Is(err, queries.ErrForbidden))
	})

	s.Run("guest bookings are admin only", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), guestView.ID).Return(guestView, nil).Times(2)
		_, err := s.queries.GetByID(s.ctx, owner, guestView.ID)
		s.True(errs.Is(err, queries.ErrForbidden))

		got, err := s.queries.GetByID(s.ctx, s.actor(user.RoleAdmin), guestView.ID)
		s.Require().NoError(err)
		s.Equal(guestView, got)
	})

	s.Run("missing booking", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))
		_, err := s.queries.GetByID(s.ctx, owner, id)
		s.True(errs.Is(err, queries.ErrBookingNotFound))
	})

	s.Run("read failure", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("db down"))
		_, err := s.queries.GetByID(s.ctx, owner, id)
		s.True(errs.Is(err, queries.ErrReadFailed))
	})
}

func (s *BookingQueriesTestSuite) TestListByUser() {
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]*queries.BookingView, 3)
	for i := range rows {
		rows[i] = &queries.BookingView{ID: uuid.New(), UserID: &userID, BookingTime: base.Add(-time.Duration(i) * time.Hour)}
	}

	s.Run("extra row yields a cursor", func() {
		s.repo.EXPECT().FindByUserID(gomock.Any(), userID, gomock.Nil(), int32(3)).Return(rows, nil)

		got, next, err := s.queries.ListByUser(s.ctx, userID, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)
		s.Equal(rows[1].ID, next.ID)
		s.True(next.BookingTime.Equal(rows[1].BookingTime))
	})

	s.Run("last page has no cursor", func() {
		after := &queries.Cursor{BookingTime: rows[1].BookingTime, ID: rows[1].ID}
		s.repo.EXPECT().FindByUserID(gomock.Any(), userID, after, int32(3)).Return(rows[2:], nil)

		got, next, err := s.queries.ListByUser(s.ctx, userID, after, 2)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("limit is clamped", func() {
		s.repo.EXPECT().FindByUserID(gomock.Any(), userID, gomock.Nil(), int32(queries.MaxListLimit+1)).Return(nil, nil)
		_, _, err := s.queries.ListByUser(s.ctx, userID, nil, 10_000)
		s.Require().NoError(err)

		s.repo.EXPECT().FindByUserID(gomock.Any(), userID, gomock.Nil(), int32(queries.DefaultListLimit+1)).Return(nil, nil)
		_, _, err = s.queries.ListByUser(s.ctx, userID, nil, 0)
		s.Require().NoError(err)
	})
}

func (s *BookingQueriesTestSuite) TestAwaitByPaymentID() {
	notFound := infra.NewRepoErr(infra.KindNotFound, "booking not found")

	s.Run("webhook lands on the second poll", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "confirmed"}
		gomock.InOrder(
			s.repo.EXPECT().FindByPaymentID(gomock.Any(), "pi_1").Return(nil, notFound),
			s.repo.EXPECT().FindByPaymentID(gomock.Any(), "pi_1").Return(view, nil),
		)
		got, err := s.queries.AwaitByPaymentID(s.ctx, "pi_1")
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("gives up as pending", func() {
		s.repo.EXPECT().FindByPaymentID(gomock.Any(), "pi_2").Return(nil, notFound).Times(3)
		_, err := s.queries.AwaitByPaymentID(s.ctx, "pi_2")
		s.True(errs.Is(err, queries.ErrPaymentPending))
	})

	s.Run("read failure stops polling", func() {
		s.repo.EXPECT().FindByPaymentID(gomock.Any(), "pi_3").Return(nil, errors.New("db down")).Times(1)
		_, err := s.queries.AwaitByPaymentID(s.ctx, "pi_3")
		s.True(errs.Is(err, queries.ErrReadFailed))
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		s.repo.EXPECT().FindByPaymentID(gomock.Any(), "pi_4").Return(nil, notFound).Times(1)
		_, err := s.queries.AwaitByPaymentID(ctx, "pi_4")
		s.ErrorIs(err, context.Canceled)
	})
}
