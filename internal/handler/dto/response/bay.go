package response

import (
	"time"

	"bay-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BayResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type WindowResponse struct {
	BayID      int64     `json:"bayId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	SlotIDs    []int64   `json:"slotIds"`
	Hours      int       `json:"hours"`
	PriceCents int64     `json:"priceCents"`
}

func FromBayViews(views []*queries.BayView) ([]BayResponse, error) {
	res := make([]BayResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromWindowViews(views []*queries.WindowView) ([]WindowResponse, error) {
	res := make([]WindowResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}
