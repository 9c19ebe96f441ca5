// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrEmailTaken indicates that a user row already exists for the email.
// The postgres adapter also returns it when an insert hits the unique
// constraint, so a duplicate registration racing past the service's
// pre-check surfaces as the same failure.
var ErrEmailTaken = errors.New("email already registered")

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Claim is the identity payload embedded in a session token. Name is
// captured at issuance time and may go stale relative to later profile
// updates; the token is never re-derived from the store.
type Claim struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, name, email, passwordHash string) (*User, error)
}
