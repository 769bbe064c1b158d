// Package users provides persistence for user identity records.
package users

import "time"

// User is the identity record. Email uniquely identifies at most one user.
//
// PasswordHash is empty for accounts created through an external identity
// provider; such accounts cannot log in with a password.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user with the password hash cleared.
// Everything handed back to callers outside the auth layer goes through
// this.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}
