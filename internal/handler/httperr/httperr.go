package httperr

import (
	"net/http"

	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	MsgSlotTaken    = "This slot was just taken, please choose another"
	MsgRefundFailed = "Booking cancelled, but automatic refund failed, please contact support"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort picks status and message from the use case error taxonomy.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrValidation),
		errs.Is(err, queries.ErrInvalidDate),
		errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, commands.ErrForbidden), errs.Is(err, queries.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions"
	case errs.Is(err, commands.ErrBookingNotFound), errs.Is(err, queries.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errs.Is(err, commands.ErrSlotNotFound):
		return http.StatusNotFound, "Slot not found"
	case errs.Is(err, queries.ErrBayNotFound):
		return http.StatusNotFound, "Bay not found"
	case errs.Is(err, commands.ErrSlotUnavailable):
		return http.StatusConflict, MsgSlotTaken
	case errs.Is(err, commands.ErrInvalidTransition):
		return http.StatusConflict, "Booking can no longer be changed"
	case errs.Is(err, commands.ErrMembershipHoursChanged):
		return http.StatusConflict, "Membership hours changed, please review your booking"
	case errs.Is(err, commands.ErrPaymentFailed):
		return http.StatusBadGateway, "Payment could not be processed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
