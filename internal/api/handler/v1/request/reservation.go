package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateReservationRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	GuestAmount int    `json:"guestAmount"`

	// RFC 3339, offset required; whether it lies in the future is the
	// service's decision, not a validation concern.
	ReservationDate string `json:"reservationDate"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PhoneNumber, validation.Required, validation.Length(1, 20)),
		validation.Field(&req.Email, validation.Required, validation.Length(1, 128), is.Email),
		validation.Field(&req.Message, validation.Required, validation.Length(0, 1000)),
		validation.Field(&req.GuestAmount, validation.Required, validation.Min(1), validation.Max(6)),
		validation.Field(&req.ReservationDate, validation.Required, validation.Date(time.RFC3339)),
	)
}
