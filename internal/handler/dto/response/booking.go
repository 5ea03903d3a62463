package response

import (
	"time"

	"bay-booking/internal/usecase/commands"
	"bay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingSlotResponse struct {
	SlotID    int64     `json:"slotId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         *uuid.UUID            `json:"userId,omitempty"`
	GuestName      *string               `json:"guestName,omitempty"`
	GuestEmail     *string               `json:"guestEmail,omitempty"`
	GuestPhone     *string               `json:"guestPhone,omitempty"`
	Status         string                `json:"status"`
	BookingTime    time.Time             `json:"bookingTime"`
	PaymentID      *string               `json:"paymentId,omitempty"`
	AmountCents    int64                 `json:"amountCents"`
	AllowanceHours int                   `json:"allowanceHours"`
	BayID          int64                 `json:"bayId"`
	BayName        string                `json:"bayName"`
	StartTime      time.Time             `json:"startTime"`
	EndTime        time.Time             `json:"endTime"`
	Slots          []BookingSlotResponse `json:"slots"`
	CancelledAt    *time.Time            `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// PaymentStatusResponse is what the unauthenticated checkout poll may see.
// It carries no customer contact details.
type PaymentStatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	BayID     int64     `json:"bayId"`
	BayName   string    `json:"bayName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func FromBookingViewForPayment(v *queries.BookingView) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		ID:        v.ID,
		Status:    v.Status,
		BayID:     v.BayID,
		BayName:   v.BayName,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
	}
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(views))}
	if err := copier.Copy(&res.Bookings, views); err != nil {
		return nil, err
	}
	if next != nil {
		s := next.Encode()
		res.NextCursor = &s
	}
	return res, nil
}

type CheckoutResponse struct {
	BookingID       uuid.UUID `json:"bookingId"`
	Status          string    `json:"status"`
	Hours           int       `json:"hours"`
	AllowanceHours  int       `json:"allowanceHours"`
	ChargeableHours int       `json:"chargeableHours"`
	AmountCents     int64     `json:"amountCents"`
	PaymentID       *string   `json:"paymentId,omitempty"`
	ClientSecret    *string   `json:"clientSecret,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	status := "pending"
	if r.Free {
		status = "confirmed"
	}
	return &CheckoutResponse{
		BookingID:       r.BookingID,
		Status:          status,
		Hours:           r.Quote.Hours,
		AllowanceHours:  r.Quote.AllowanceHours,
		ChargeableHours: r.Quote.ChargeableHours,
		AmountCents:     r.Quote.Amount.Cents(),
		PaymentID:       r.PaymentID,
		ClientSecret:    r.ClientSecret,
	}
}

type ConfirmResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Replayed  bool      `json:"replayed"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{BookingID: r.BookingID, Status: "confirmed", Replayed: r.Replayed}
}

type CancelResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	Status       string    `json:"status"`
	RefundStatus string    `json:"refundStatus"`
	Warning      string    `json:"warning,omitempty"`
}

func FromCancelResult(r *commands.CancelResult, warning string) *CancelResponse {
	return &CancelResponse{
		BookingID:    r.BookingID,
		Status:       "cancelled",
		RefundStatus: r.RefundStatus.String(),
		Warning:      warning,
	}
}

type ExtendResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	AddedSlotIDs []int64   `json:"addedSlotIds"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Hours        int       `json:"hours"`
	AmountCents  int64     `json:"amountCents"`
}

func FromExtendResult(r *commands.ExtendResult) *ExtendResponse {
	return &ExtendResponse{
		BookingID:    r.BookingID,
		AddedSlotIDs: r.AddedSlotIDs,
		StartTime:    r.Window.StartTime,
		EndTime:      r.Window.EndTime,
		Hours:        r.Quote.Hours,
		AmountCents:  r.Quote.Amount.Cents(),
	}
}

type CleanupResponse struct {
	Cleaned int `json:"cleaned"`
}
