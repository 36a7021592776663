package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

// ErrUserNotFound is an internal consistency fault: the authenticated user id
// no longer resolves to a user record.
var ErrUserNotFound = errors.New("user not found")

// Service handles task business logic. Every operation takes the
// authenticated user's id as an explicit scoping parameter.
type Service struct {
	repo     *Repository
	userRepo *user.Repository
	cache    StatsCache
	logger   *logging.Logger
}

func NewService(repo *Repository, userRepo *user.Repository, cache StatsCache, logger *logging.Logger) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// List returns all tasks owned by the user
func (s *Service) List(ctx context.Context, userID int64) ([]Task, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// ListByStatus returns the user's tasks filtered by status. The raw status
// is matched case-insensitively.
func (s *Service) ListByStatus(ctx context.Context, userID int64, rawStatus string) ([]Task, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwnerAndStatus(ctx, userID, status)
}

// Get returns a single task owned by the user
func (s *Service) Get(ctx context.Context, taskID, userID int64) (*Task, error) {
	return s.repo.GetByIDAndOwner(ctx, taskID, userID)
}

// Create adds a new PENDING task for the user
func (s *Service) Create(ctx context.Context, userID int64, name, description string) (*Task, error) {
	// Defensive: the middleware resolved this id from a valid token already
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve task owner: %w", err)
	}

	created, err := s.repo.Create(ctx, userID, name, description)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return created, nil
}

// Update replaces name and description; status is replaced only when a
// non-empty value is supplied.
func (s *Service) Update(ctx context.Context, taskID, userID int64, name, description string, rawStatus *string) (*Task, error) {
	var status *Status
	if rawStatus != nil {
		parsed, err := ParseStatus(*rawStatus)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	updated, err := s.repo.Update(ctx, taskID, userID, name, description, status)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return updated, nil
}

// ToggleStatus flips a task between PENDING and COMPLETED
func (s *Service) ToggleStatus(ctx context.Context, taskID, userID int64) (*Task, error) {
	toggled, err := s.repo.ToggleStatus(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return toggled, nil
}

// Delete removes a task permanently
func (s *Service) Delete(ctx context.Context, taskID, userID int64) error {
	if err := s.repo.Delete(ctx, taskID, userID); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	return nil
}

// Stats returns per-status counts for the user, served from cache when warm.
// Cache failures fall through to the database.
func (s *Service) Stats(ctx context.Context, userID int64) (*Stats, error) {
	if s.cache != nil {
		stats, err := s.cache.Get(ctx, userID)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, ErrStatsNotCached) {
			s.logger.Warn("failed to read task stats cache", "user_id", userID, "error", err.Error())
		}
	}

	pending, err := s.repo.CountByOwnerAndStatus(ctx, userID, StatusPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountByOwnerAndStatus(ctx, userID, StatusCompleted)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Pending: pending, Completed: completed}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, stats); err != nil {
			s.logger.Warn("failed to store task stats cache", "user_id", userID, "error", err.Error())
		}
	}

	return stats, nil
}

func (s *Service) invalidateStats(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate task stats cache", "user_id", userID, "error", err.Error())
	}
}
