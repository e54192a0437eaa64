package domain

import (
	"errors"
	"strings"
)

// TaskStatus represents the completion state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Task-specific validation errors
var (
	// ErrEmptyTaskTitle is returned when a task title is empty or whitespace only.
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of the known values.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task is a unit of work tracked by the service.
//
// Task is a value type: once built it is never modified in place. Updates
// construct a replacement value carrying the same ID. An ID of zero means the
// task has not been persisted yet; the store assigns IDs starting at 1.
type Task struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// NewTask creates a new, not yet persisted Task.
// The title is trimmed of surrounding whitespace and must not be empty.
// Returns a validation error if the title or status is invalid.
func NewTask(title string, status TaskStatus) (Task, error) {
	task := Task{
		Title:  strings.TrimSpace(title),
		Status: status,
	}

	if err := task.Validate(); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// It does not check the ID, since unsaved tasks legitimately have none.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
	}

	if !t.Status.IsValid() {
		return NewValidationError("status", "must be one of pending, done", ErrInvalidTaskStatus)
	}

	return nil
}

// IsPersisted reports whether the task has been assigned an ID by a store.
func (t Task) IsPersisted() bool {
	return t.ID > 0
}

// IsValid reports whether s is a known TaskStatus.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusDone:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(raw)
	if !status.IsValid() {
		return "", NewValidationError("status", "must be one of pending, done", ErrInvalidTaskStatus)
	}
	return status, nil
}
