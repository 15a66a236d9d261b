// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the FinTrack system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Currency     string // Display label only; never used for conversion
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultCurrency is assigned to new users; it only affects display.
const DefaultCurrency = "INR"

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Currency:     DefaultCurrency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
