package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/go-task-api/internal/database"
	"github.com/redmonkez12/go-task-api/internal/user"
)

func newTestRepos(t *testing.T) (*Repository, *user.Repository, *bun.DB) {
	t.Helper()

	db, err := database.NewSQLiteDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(context.Background(), db))

	return NewRepository(db), user.NewRepository(db), db
}

func createTestUser(t *testing.T, userRepo *user.Repository, email string) *user.User {
	t.Helper()

	u, err := userRepo.Create(context.Background(), "Test User", email, "hash")
	require.NoError(t, err)
	return u
}

func TestRepositoryCreateAndGet(t *testing.T) {
	repo, userRepo, _ := newTestRepos(t)
	ctx := context.Background()
	owner := createTestUser(t, userRepo, "ann@x.com")

	created, err := repo.Create(ctx, owner.ID, "Buy milk", "2 liters")
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, owner.ID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByIDAndOwner(ctx, created.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Name)
	assert.Equal(t, "2 liters", got.Description)
}

func TestRepositoryOwnershipIsolation(t *testing.T) {
	repo, userRepo, _ := newTestRepos(t)
	ctx := context.Background()
	ann := createTestUser(t, userRepo, "ann@x.com")
	bob := createTestUser(t, userRepo, "bob@x.com")

	annTask, err := repo.Create(ctx, ann.ID, "Ann's task", "")
	require.NoError(t, err)

	// Bob sees neither the task nor a hint that it exists
	_, err = repo.GetByIDAndOwner(ctx, annTask.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, annTask.ID, bob.ID, "stolen", "", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.ToggleStatus(ctx, annTask.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, annTask.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	bobTasks, err := repo.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	// Ann's task is untouched by all of the above
	got, err := repo.GetByIDAndOwner(ctx, annTask.ID, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann's task", got.Name)
	assert.Equal(t, StatusPending, got.Status)
}

func TestRepositoryListByOwnerAndStatus(t *testing.T) {
	repo, userRepo, _ := newTestRepos(t)
	ctx := context.Background()
	owner := createTestUser(t, userRepo, "ann@x.com")

	first, err := repo.Create(ctx, owner.ID, "first", "")
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner.ID, "second", "")
	require.NoError(t, err)

	_, err = repo.ToggleStatus(ctx, first.ID, owner.ID)
	require.NoError(t, err)

	pending, err := repo.ListByOwnerAndStatus(ctx, owner.ID, StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Name)

	completed, err := repo.ListByOwnerAndStatus(ctx, owner.ID, StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "first", completed[0].Name)
}

func TestRepositoryCountByOwnerAndStatus(t *testing.T) {
	repo, userRepo, _ := newTestRepos(t)
	ctx := context.Background()
	owner := createTestUser(t, userRepo, "ann@x.com")

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, owner.ID, name, "")
		require.NoError(t, err)
	}

	pending, err := repo.CountByOwnerAndStatus(ctx, owner.ID, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending)

	completed, err := repo.CountByOwnerAndStatus(ctx, owner.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(0), completed)
}

func TestRepositoryDelete(t *testing.T) {
	repo, userRepo, _ := newTestRepos(t)
	ctx := context.Background()
	owner := createTestUser(t, userRepo, "ann@x.com")

	created, err := repo.Create(ctx, owner.ID, "ephemeral", "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID, owner.ID))

	_, err = repo.GetByIDAndOwner(ctx, created.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(ctx, created.ID, owner.ID), ErrNotFound)
}
