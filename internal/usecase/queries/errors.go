package queries

import "bay-booking/internal/pkg/errs"

var (
	ErrBayNotFound     = errs.New("bay not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("forbidden")
	ErrInvalidDate     = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrPaymentPending  = errs.New("payment not yet reflected in a booking")
	ErrReadFailed      = errs.New("read failed")
)
