package request

import "bay-booking/internal/domain/slot"

type SetSlotStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available unavailable"`
}

func (r SetSlotStatusRequest) ToStatus() (slot.Status, error) {
	return slot.NewStatus(r.Status)
}
