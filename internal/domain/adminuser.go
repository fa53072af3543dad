package domain

// AdminUser is the single privileged account. It is provisioned out-of-band
// by cmd/admincreator and never mutated through the API.
type AdminUser struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}
