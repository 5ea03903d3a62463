package booking

import "bay-booking/internal/domain/slot"

type Quote struct {
	Hours           int
	AllowanceHours  int
	ChargeableHours int
	Amount          Money
}

func (q Quote) IsFree() bool {
	return q.Amount.IsZero()
}

type PriceCalculator interface {
	Quote(window slot.Window, allowanceHours int) Quote
}

// HourlyPriceCalculator charges a flat rate per slot; membership hours are used first.
type HourlyPriceCalculator struct {
	HourlyRateCents int64
}

func NewHourlyPriceCalculator(hourlyRateCents int64) *HourlyPriceCalculator {
	return &HourlyPriceCalculator{HourlyRateCents: hourlyRateCents}
}

func (pc *HourlyPriceCalculator) Quote(window slot.Window, allowanceHours int) Quote {
	hours := window.Hours()
	used := min(max(allowanceHours, 0), hours)
	chargeable := hours - used
	return Quote{
		Hours:           hours,
		AllowanceHours:  used,
		ChargeableHours: chargeable,
		Amount:          NewMoney(int64(chargeable) * pc.HourlyRateCents),
	}
}
