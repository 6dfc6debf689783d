package entity

import (
	"errors"
	"time"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists for this pin")
)

// Account is the login credential set for a member. At most one per PIN.
// PasswordHash is a bcrypt digest; the plaintext is never stored or logged.
type Account struct {
	PIN          string    `json:"pin"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
