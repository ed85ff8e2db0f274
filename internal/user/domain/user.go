// Package domain contains the customer identity model. The ordering core
// only ever sees a validated Customer handle; credential checks stay behind
// the CredentialRepository port.
package domain

import (
	"context"
	"time"
)

// Customer is a registered shopper.
type Customer struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CredentialRepository is the credential store port. Implementations must
// never hold plaintext passwords.
type CredentialRepository interface {
	// UserExists reports whether the username is registered.
	UserExists(ctx context.Context, username string) (bool, error)
	// Authenticate returns the customer when the password matches, and
	// ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) (*Customer, error)
	// Register stores a new credential set, hashing the password.
	Register(ctx context.Context, username, password, email string) error
}

// Session is a logged-in customer's server-side session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
