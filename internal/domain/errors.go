package domain

// Error is a recoverable business-rule violation. Field names the part of
// the client request the violation refers to, so the frontend can attach the
// message to the right input.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// The taxonomy is closed: services only ever fail with one of these values
// or with a wrapped internal error.
var (
	ErrInvalidCredentials     = &Error{Field: "login", Message: "An admin user with this username or password does not exist!"}
	ErrInvalidCourseID        = &Error{Field: "id", Message: "The course with this id does not exist!"}
	ErrInvalidCourseMenuID    = &Error{Field: "id", Message: "The course menu with this id does not exist!"}
	ErrInvalidDrinkID         = &Error{Field: "id", Message: "The drink with this id does not exist!"}
	ErrInvalidDrinkMenuID     = &Error{Field: "id", Message: "The drink menu with this id does not exist!"}
	ErrInvalidReservationID   = &Error{Field: "id", Message: "The reservation with this id does not exist!"}
	ErrInvalidReservationDate = &Error{Field: "reservationDate", Message: "Reservation date must be after todays date and time."}
)
