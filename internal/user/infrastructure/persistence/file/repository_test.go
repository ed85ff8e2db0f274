package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/groceryplatform/internal/user/domain"
)

func newRepo(t *testing.T) domain.CredentialRepository {
	t.Helper()
	repo, err := NewCredentialRepository(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, err)
	return repo
}

func TestCredentialRepository_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))

	customer, err := repo.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", customer.Username)
	assert.Equal(t, "alice@example.com", customer.Email)
}

func TestCredentialRepository_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))

	_, err := repo.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCredentialRepository_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Authenticate(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCredentialRepository_UserExists(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	exists, err := repo.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))

	exists, err = repo.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCredentialRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))
	err := repo.Register(ctx, "alice", "other", "other@example.com")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCredentialRepository_NeverStoresPlaintext(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.txt")
	repo, err := NewCredentialRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3cret")
	assert.Contains(t, string(raw), "alice,")
}

func TestCredentialRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.txt")

	repo, err := NewCredentialRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))

	reopened, err := NewCredentialRepository(path)
	require.NoError(t, err)
	customer, err := reopened.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", customer.Username)
}

func TestCredentialRepository_SkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage-line\n"), 0o600))

	repo, err := NewCredentialRepository(path)
	require.NoError(t, err)

	exists, err := repo.UserExists(ctx, "garbage-line")
	require.NoError(t, err)
	assert.False(t, exists)

	// The store keeps working after the bad line.
	require.NoError(t, repo.Register(ctx, "alice", "s3cret", "alice@example.com"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "garbage-line\n"))
}
