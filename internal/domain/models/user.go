package models

import "time"

// User is an authenticated account. Profile fields come from signup and are
// referenced by ID everywhere else; the password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the display name used when joining users into responses.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
