package booking

import "time"

const DefaultRefundWindow = 24 * time.Hour

type RefundPolicy struct {
	Window time.Duration
}

func NewRefundPolicy(window time.Duration) RefundPolicy {
	if window <= 0 {
		window = DefaultRefundWindow
	}
	return RefundPolicy{Window: window}
}

// Eligible is true when the first booked slot is at least Window away.
func (p RefundPolicy) Eligible(firstSlotStart, now time.Time) bool {
	return firstSlotStart.Sub(now) >= p.Window
}
