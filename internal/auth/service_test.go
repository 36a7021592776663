package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/database"
	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

func newTestService(t *testing.T) (*Service, *user.Repository, TokenService) {
	t.Helper()

	db, err := database.NewSQLiteDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(context.Background(), db))

	tokenSvc, err := NewPasetoService(testPasetoKey)
	require.NoError(t, err)

	userRepo := user.NewRepository(db)
	svc := NewService(userRepo, tokenSvc, logging.NewLogger(true), 24*time.Hour)
	return svc, userRepo, tokenSvc
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokenSvc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ann", "ann@x.com", "password1", "password1")
	require.NoError(t, err)

	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Bearer", registered.TokenType)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), registered.ExpiresIn)
	assert.Equal(t, "ann@x.com", registered.User.Email)
	assert.Equal(t, "Ann", registered.User.Name)
	assert.NotZero(t, registered.User.ID)

	loggedIn, err := svc.Login(ctx, "ann@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	// Both tokens resolve to the same identity
	registeredClaims, err := tokenSvc.VerifyToken(registered.Token)
	require.NoError(t, err)
	loginClaims, err := tokenSvc.VerifyToken(loggedIn.Token)
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, registeredClaims.UserID)
	assert.Equal(t, registeredClaims.UserID, loginClaims.UserID)
	assert.Equal(t, "ann@x.com", loginClaims.Email)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "password1", "password2")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// No user record was persisted
	exists, err := userRepo.ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "password1", "password1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Another Ann", "ann@x.com", "password9", "password9")
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost@x.com", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "password1", "password1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ann@x.com", "password2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStoresVerifiableHash(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "ann@x.com", "password1", "password1")
	require.NoError(t, err)

	stored, err := userRepo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", stored.PasswordHash)
	assert.True(t, VerifyPassword(stored.PasswordHash, "password1"))
}
