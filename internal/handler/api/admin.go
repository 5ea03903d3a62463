package api

import (
	"net/http"
	"strconv"

	reqdto "bay-booking/internal/handler/dto/request"
	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/handler/middleware"
	"bay-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings commands.BookingCommands
	slots    commands.SlotCommands
}

func NewAdminHandler(bookings commands.BookingCommands, slots commands.SlotCommands) *AdminHandler {
	return &AdminHandler{bookings: bookings, slots: slots}
}

// @Summary Extend booking
// @Description Add one or two following hours to a confirmed booking that is under way
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ExtendBookingRequest true "Extra hours"
// @Success 200 {object} resdto.ExtendResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/extend [post]
func (h *AdminHandler) Extend(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bookings.Extend(c.Request.Context(), id, req.Hours, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtendResult(result))
}

// @Summary Block out or reopen a slot
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body reqdto.SetSlotStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/slots/{id}/status [put]
func (h *AdminHandler) SetSlotStatus(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || slotID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SetSlotStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	to, err := req.ToStatus()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	if err := h.slots.SetStatus(c.Request.Context(), slotID, to, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
