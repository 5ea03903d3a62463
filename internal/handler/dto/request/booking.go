package request

import (
	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/user"
)

type GuestRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=32"`
}

type CheckoutRequest struct {
	SlotIDs []int64       `json:"slotIds" binding:"required,min=1,max=3,dive,gt=0"`
	Guest   *GuestRequest `json:"guest,omitempty"`
}

// ToCustomer books for the signed-in actor when there is one, otherwise for the guest.
func (r CheckoutRequest) ToCustomer(actor *user.Actor) (booking.Customer, error) {
	if actor != nil {
		return booking.NewMemberCustomer(actor.ID()), nil
	}
	if r.Guest == nil {
		return booking.Customer{}, booking.ErrMissingCustomer
	}
	guest, err := booking.NewGuestContact(r.Guest.Name, r.Guest.Email, r.Guest.Phone)
	if err != nil {
		return booking.Customer{}, err
	}
	return booking.NewGuestCustomer(guest), nil
}

type ConfirmPaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required,max=255"`
}

type ExtendBookingRequest struct {
	Hours int `json:"hours" binding:"required,oneof=1 2"`
}
