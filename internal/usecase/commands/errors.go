package commands

import "bay-booking/internal/pkg/errs"

var (
	ErrValidation              = errs.New("validation failed")
	ErrForbidden               = errs.New("forbidden")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrInvalidTransition       = errs.New("invalid booking status transition")
	ErrMembershipHoursChanged  = errs.New("membership hours changed during checkout")
	ErrPaymentFailed           = errs.New("payment failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// invalid returns a validation error that keeps the reason in its message.
func invalid(reason string) error {
	return errs.Wrap(ErrValidation, reason)
}
