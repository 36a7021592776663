package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.NewSQLiteDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(context.Background(), db))
	return NewRepository(db)
}

func TestCreateAndGetByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ann", "ann@x.com", "hash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestGetByEmailNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ann", "ann@x.com", "hash")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)

	_, err = repo.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Ann", "ann@x.com", "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Another Ann", "ann@x.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestExistsByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, "Ann", "ann@x.com", "hash")
	require.NoError(t, err)

	exists, err = repo.ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
