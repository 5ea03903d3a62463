package api

import (
	"net/http"
	"strconv"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/user"
	reqdto "bay-booking/internal/handler/dto/request"
	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/handler/middleware"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	checkout commands.CheckoutCommands
	bookings commands.BookingCommands
	q        queries.BookingQueries
}

func NewBookingHandler(
	checkout commands.CheckoutCommands,
	bookings commands.BookingCommands,
	q queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{checkout: checkout, bookings: bookings, q: q}
}

// @Summary Checkout
// @Description Hold the selected slots and open a payment. Signed-in members book for themselves, anyone else passes guest details.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Slots to book"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	customer, err := req.ToCustomer(optionalActor(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer details", gin.H{"reason": err.Error()})
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), req.SlotIDs, customer)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = iv
	}
	after, err := queries.DecodeCursor(c.Query("after"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), actor.ID(), after, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingViews(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.writeBooking(c, view)
}

// @Summary Booking for a payment
// @Description Polled by the checkout page until the payment shows up on a booking
// @Tags bookings
// @Produce json
// @Param paymentId path string true "Payment intent ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Success 202 {object} map[string]string
// @Router /bookings/payment/{paymentId} [get]
func (h *BookingHandler) GetByPayment(c *gin.Context) {
	paymentID := c.Param("paymentId")

	view, err := h.q.AwaitByPaymentID(c.Request.Context(), paymentID)
	if errs.Is(err, queries.ErrPaymentPending) {
		c.JSON(http.StatusAccepted, gin.H{"status": "processing"})
		return
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViewForPayment(view))
}

// @Summary Confirm payment
// @Description Client-side completion; the payment is verified with the processor first
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Payment"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.ConfirmPayment(c.Request.Context(), id, req.PaymentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Cancel booking
// @Description Releases the slots. Paid bookings are refunded when cancelled far enough ahead.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.bookings.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	var warning string
	if result.RefundStatus == booking.RefundFailed {
		warning = httperr.MsgRefundFailed
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result, warning))
}

func (h *BookingHandler) writeBooking(c *gin.Context, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func optionalActor(c *gin.Context) *user.Actor {
	if actor, ok := middleware.GetActor(c); ok {
		return &actor
	}
	return nil
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}
