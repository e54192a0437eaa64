package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations own the stored values: they hand out copies and never
// let callers mutate persisted state in place.
type TaskStore interface {
	// List returns every stored task. No ordering is guaranteed by the
	// interface; returns an empty slice when the store is empty.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (domain.Task, error)

	// Add assigns a fresh, never reused ID to the task and persists it.
	// Any ID already set on the argument is ignored.
	// Returns the stored task with its ID set.
	Add(ctx context.Context, task domain.Task) (domain.Task, error)

	// Update replaces the stored task that has task.ID.
	// Returns ErrTaskNotFound if no task with that ID exists.
	Update(ctx context.Context, task domain.Task) (domain.Task, error)

	// Delete removes the task with the given ID.
	// Deleting an absent task is not an error.
	Delete(ctx context.Context, id int64) error
}
