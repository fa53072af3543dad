package domain

import "time"

// Reservation is a table booking submitted by a guest.
type Reservation struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	PhoneNumber     string    `json:"phoneNumber"`
	Email           string    `json:"email"`
	Message         string    `json:"message"`
	GuestAmount     int       `json:"guestAmount"`
	ReservationDate time.Time `json:"reservationDate"`
}
