package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo encodes pending -> confirmed | cancelled and confirmed -> cancelled.
// Cancelled is terminal.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

type RefundStatus string

const (
	RefundRefunded          RefundStatus = "refunded"
	RefundNotRefundedPolicy RefundStatus = "not_refunded_policy"
	RefundFailed            RefundStatus = "failed"
	RefundNotApplicable     RefundStatus = "not_applicable"
)

func (r RefundStatus) String() string {
	return string(r)
}
