package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/dmitrijs2005/secureapi/internal/server/auth"
	"github.com/dmitrijs2005/secureapi/internal/server/config"
)

type fakeRepo struct {
	user *User
	err  error
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil || f.user.UserName != username {
		return nil, common.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeRepo) CreateIfAbsent(ctx context.Context, username string, passwordHash string) error {
	return f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.AccessTokenValidityDuration = time.Hour
	return cfg
}

func seededRepo(t *testing.T) *fakeRepo {
	t.Helper()
	hash, err := auth.HashPassword("testpass123", 4)
	require.NoError(t, err)
	return &fakeRepo{user: &User{ID: 1, UserName: "testuser", PasswordHash: hash}}
}

func TestLogin_Success(t *testing.T) {
	cfg := testConfig()
	s := NewService(seededRepo(t), cfg)

	res, err := s.Login(context.Background(), "testuser", "testpass123")
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(1), res.UserID)
	assert.Equal(t, "testuser", res.UserName)

	// the token subject must round-trip to the user id
	subject, err := auth.SubjectFromToken(res.AccessToken, []byte(cfg.SecretKey))
	require.NoError(t, err)
	assert.Equal(t, "1", subject)
}

func TestLogin_UnknownUser(t *testing.T) {
	s := NewService(seededRepo(t), testConfig())

	_, err := s.Login(context.Background(), "nobody", "testpass123")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := NewService(seededRepo(t), testConfig())

	_, err := s.Login(context.Background(), "testuser", "wrongpass")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

// An unknown user and a wrong password must be indistinguishable, otherwise
// the login endpoint leaks which usernames exist.
func TestLogin_FailuresAreUndifferentiated(t *testing.T) {
	s := NewService(seededRepo(t), testConfig())
	ctx := context.Background()

	_, errUnknown := s.Login(ctx, "nobody", "x")
	_, errWrongPass := s.Login(ctx, "testuser", "x")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogin_RepositoryFailureIsInternal(t *testing.T) {
	s := NewService(&fakeRepo{err: assert.AnError}, testConfig())

	_, err := s.Login(context.Background(), "testuser", "testpass123")
	require.ErrorIs(t, err, common.ErrInternal)
	assert.Contains(t, err.Error(), assert.AnError.Error(), "cause must stay in the message for logging")
}
