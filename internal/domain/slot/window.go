package slot

import (
	"errors"
	"iter"
	"time"
)

const MaxWindowSlots = 3

var (
	ErrEmptySelection   = errors.New("no slots selected")
	ErrTooManySlots     = errors.New("a booking spans at most 3 slots")
	ErrMixedBays        = errors.New("slots belong to different bays")
	ErrNotContiguous    = errors.New("slots are not contiguous")
	ErrDuplicateSlot    = errors.New("slot selected more than once")
	ErrSlotNotAvailable = errors.New("slot is not available")
	ErrSlotAlreadyBegun = errors.New("slot has already started")
)

// Window is a bookable run of 1 to MaxWindowSlots contiguous slots on one bay.
type Window struct {
	BayID     int64
	StartTime time.Time
	EndTime   time.Time
	SlotIDs   []int64
}

func (w Window) Hours() int {
	return len(w.SlotIDs)
}

func (w Window) Duration() time.Duration {
	return w.EndTime.Sub(w.StartTime)
}

// Windows yields every 1, 2 and 3 slot window starting at each slot, in input order.
// Input is expected sorted by start time. A window is only emitted if each slot in it
// is available and each slot starts exactly at the previous slot's end.
func Windows(slots []*Slot) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for i := range slots {
			if !slots[i].IsAvailable() {
				continue
			}
			for size := 1; size <= MaxWindowSlots && i+size <= len(slots); size++ {
				last := slots[i+size-1]
				if size > 1 && (!last.Follows(slots[i+size-2]) || !last.IsAvailable()) {
					break
				}
				if !yield(newWindow(slots[i : i+size])) {
					return
				}
			}
		}
	}
}

// ValidateContiguous checks a selection the way Windows would have produced it.
// Slots must be in start order.
func ValidateContiguous(slots []*Slot) error {
	if len(slots) == 0 {
		return ErrEmptySelection
	}
	if len(slots) > MaxWindowSlots {
		return ErrTooManySlots
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].BayID() != slots[0].BayID() {
			return ErrMixedBays
		}
		if !slots[i].Follows(slots[i-1]) {
			return ErrNotContiguous
		}
	}
	return nil
}

// ToWindow builds the window for an already validated selection.
func ToWindow(slots []*Slot) (Window, error) {
	if err := ValidateContiguous(slots); err != nil {
		return Window{}, err
	}
	return newWindow(slots), nil
}

func newWindow(run []*Slot) Window {
	ids := make([]int64, len(run))
	for i, s := range run {
		ids[i] = s.ID()
	}
	return Window{
		BayID:     run[0].BayID(),
		StartTime: run[0].Start(),
		EndTime:   run[len(run)-1].End(),
		SlotIDs:   ids,
	}
}
