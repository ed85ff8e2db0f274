// Package file implements the credential store over a flat users file, one
// "username,bcrypt-hash,email" line per account. Passwords are hashed with
// bcrypt; the file never holds plaintext.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/wyfcoding/groceryplatform/internal/user/domain"
)

type credentialRepository struct {
	mu   sync.Mutex
	path string
}

// NewCredentialRepository opens (creating if needed) the users file at path.
func NewCredentialRepository(path string) (domain.CredentialRepository, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	f.Close()
	return &credentialRepository{path: path}, nil
}

func (r *credentialRepository) UserExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records, err := r.load()
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *credentialRepository) Authenticate(_ context.Context, username, password string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(rec.hash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return &domain.Customer{Username: rec.username, Email: rec.email}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *credentialRepository) Register(_ context.Context, username, password, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	records, err := r.load()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.username == username {
			return domain.ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s,%s,%s\n", username, hash, email); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

type record struct {
	username string
	hash     string
	email    string
}

func (r *credentialRepository) load() ([]record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	var records []record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			// A malformed line is skipped rather than treated as fatal.
			continue
		}
		records = append(records, record{username: parts[0], hash: parts[1], email: parts[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	return records, nil
}
