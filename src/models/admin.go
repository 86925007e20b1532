package models

import "time"

// Admin represents an administrator account. PasswordHash is never serialized
// into a response.
type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
