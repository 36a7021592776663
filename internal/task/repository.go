package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/go-task-api/internal/database"
)

// ErrNotFound covers both a missing task and a task owned by another user;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("task not found")

// Repository handles task data persistence. Every query is scoped to the
// owning user's id.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// ListByOwner retrieves all tasks owned by the given user
func (r *Repository) ListByOwner(ctx context.Context, userID int64) ([]Task, error) {
	var dbTasks []database.Task
	err := r.db.NewSelect().
		Model(&dbTasks).
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return mapDBTasksToModels(dbTasks), nil
}

// ListByOwnerAndStatus retrieves tasks owned by the given user with the given status
func (r *Repository) ListByOwnerAndStatus(ctx context.Context, userID int64, status Status) ([]Task, error) {
	var dbTasks []database.Task
	err := r.db.NewSelect().
		Model(&dbTasks).
		Where("user_id = ?", userID).
		Where("status = ?", string(status)).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}

	return mapDBTasksToModels(dbTasks), nil
}

// GetByIDAndOwner retrieves a single task scoped to its owner
func (r *Repository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*Task, error) {
	dbTask := new(database.Task)
	err := r.db.NewSelect().
		Model(dbTask).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Create inserts a new task owned by the given user with status PENDING
func (r *Repository) Create(ctx context.Context, userID int64, name, description string) (*Task, error) {
	now := time.Now()
	dbTask := &database.Task{
		Name:        name,
		Description: description,
		Status:      string(StatusPending),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(dbTask).
			Returning("*").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Update replaces name and description of an owner-scoped task; status is
// replaced only when non-nil. The read and write share one transaction.
func (r *Repository) Update(ctx context.Context, id, userID int64, name, description string, status *Status) (*Task, error) {
	dbTask := new(database.Task)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(dbTask).
			Where("id = ?", id).
			Where("user_id = ?", userID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		dbTask.Name = name
		dbTask.Description = description
		if status != nil {
			dbTask.Status = string(*status)
		}
		dbTask.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().
			Model(dbTask).
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// ToggleStatus flips an owner-scoped task between PENDING and COMPLETED
func (r *Repository) ToggleStatus(ctx context.Context, id, userID int64) (*Task, error) {
	dbTask := new(database.Task)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(dbTask).
			Where("id = ?", id).
			Where("user_id = ?", userID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		dbTask.Status = string(Status(dbTask.Status).Toggle())
		dbTask.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().
			Model(dbTask).
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle task status: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Delete removes an owner-scoped task permanently
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		result, err := tx.NewDelete().
			Model((*database.Task)(nil)).
			Where("id = ?", id).
			Where("user_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// CountByOwnerAndStatus counts tasks owned by the given user with the given status
func (r *Repository) CountByOwnerAndStatus(ctx context.Context, userID int64, status Status) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*database.Task)(nil)).
		Where("user_id = ?", userID).
		Where("status = ?", string(status)).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return int64(count), nil
}

func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		Name:        dbt.Name,
		Description: dbt.Description,
		Status:      Status(dbt.Status),
		UserID:      dbt.UserID,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
	}
}

func mapDBTasksToModels(dbTasks []database.Task) []Task {
	tasks := make([]Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *mapDBTaskToModel(&dbTasks[i]))
	}
	return tasks
}
