//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/handler/api"
	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/tests/common/httptest"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockSlots    *commandsmock.MockSlotCommands
	actors       testActors
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSlots = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.actors = newTestActors(s.T())
	h := api.NewAdminHandler(s.mockBookings, s.mockSlots)

	admin := s.router.Group("/admin", s.actors.fakeAuth(true))
	admin.POST("/bookings/:id/extend", h.Extend)
	admin.PUT("/slots/:id/status", h.SetSlotStatus)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestExtend() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/extend"
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockBookings.EXPECT().Extend(gomock.Any(), id, 1, s.actors.admin).Return(&commands.ExtendResult{
			BookingID:    id,
			AddedSlotIDs: []int64{12},
			Window:       slot.Window{BayID: 1, StartTime: start, EndTime: start.Add(2 * time.Hour), SlotIDs: []int64{11, 12}},
			Quote:        booking.Quote{Hours: 1, ChargeableHours: 1, Amount: booking.NewMoney(4500)},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"hours": 1}, adminToken)

		var body resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int64{12}, body.AddedSlotIDs)
		s.True(body.EndTime.Equal(start.Add(2 * time.Hour)))
		s.Equal(int64(4500), body.AmountCents)
	})

	s.Run("error: 400 on hours outside 1..2", func() {
		for _, hours := range []int{0, 3} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"hours": hours}, adminToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 409 when the next slot is taken", func() {
		s.mockBookings.EXPECT().Extend(gomock.Any(), id, 2, s.actors.admin).
			Return(nil, errs.Wrap(commands.ErrSlotUnavailable, "next slot"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"hours": 2}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 403 for a member", func() {
		s.mockBookings.EXPECT().Extend(gomock.Any(), id, 1, s.actors.member).Return(nil, commands.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"hours": 1}, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *AdminHandlerTestSuite) TestSetSlotStatus() {
	s.Run("success: blocks a slot", func() {
		s.mockSlots.EXPECT().SetStatus(gomock.Any(), int64(7), slot.StatusUnavailable, s.actors.admin).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/slots/7/status", map[string]any{"status": "unavailable"}, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: booked is not settable", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/slots/7/status", map[string]any{"status": "booked"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: malformed slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/slots/x/status", map[string]any{"status": "available"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid slot id")
	})

	s.Run("error: unknown slot", func() {
		s.mockSlots.EXPECT().SetStatus(gomock.Any(), int64(404), slot.StatusAvailable, s.actors.admin).
			Return(errs.Wrap(commands.ErrSlotNotFound, "find slot"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/slots/404/status", map[string]any{"status": "available"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/slots/7/status", map[string]any{"status": "available"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
