package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/wyfcoding/groceryplatform/internal/user/domain"
)

const sessionTTL = 24 * time.Hour

// AuthApplicationService handles registration and login against the
// credential store. A session repository is optional; without one (the CLI
// case) Login returns the customer handle and an empty token.
type AuthApplicationService struct {
	creds    domain.CredentialRepository
	sessions domain.SessionRepository
}

func NewAuthApplicationService(creds domain.CredentialRepository, sessions domain.SessionRepository) *AuthApplicationService {
	return &AuthApplicationService{creds: creds, sessions: sessions}
}

func (s *AuthApplicationService) UserExists(ctx context.Context, username string) (bool, error) {
	return s.creds.UserExists(ctx, username)
}

// Register creates an account. A taken username fails with ErrUsernameTaken.
func (s *AuthApplicationService) Register(ctx context.Context, username, password, email string) error {
	return s.creds.Register(ctx, username, password, email)
}

// Login validates the credentials and, when a session store is wired,
// issues a session token.
func (s *AuthApplicationService) Login(ctx context.Context, username, password string) (*domain.Customer, string, error) {
	customer, err := s.creds.Authenticate(ctx, username, password)
	if err != nil {
		return nil, "", err
	}
	if s.sessions == nil {
		return customer, "", nil
	}

	token, err := newToken()
	if err != nil {
		return nil, "", err
	}
	session := &domain.Session{
		Token:     token,
		Username:  customer.Username,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

// Logout drops the session; unknown tokens are a no-op.
func (s *AuthApplicationService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil || token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
