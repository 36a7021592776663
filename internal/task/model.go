package task

import (
	"time"
)

type Task struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stats holds per-status task counts for one user.
type Stats struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}
