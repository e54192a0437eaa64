package api

import (
	"strings"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// CreateTaskRequest defines the payload for POST /tasks.
// A missing or null status defaults to pending; any supplied value must be a
// known status, including the empty string.
type CreateTaskRequest struct {
	Title  string  `json:"title"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending done"`
}

// Validate rejects a blank title, then applies the struct tags.
func (r *CreateTaskRequest) Validate() error {
	if err := validateTitle(&r.Title); err != nil {
		return err
	}
	return shared.Validate.Struct(r)
}

// TaskStatus returns the requested status, defaulting to pending.
func (r *CreateTaskRequest) TaskStatus() (domain.TaskStatus, error) {
	if r.Status == nil {
		return domain.TaskStatusPending, nil
	}
	return domain.ParseTaskStatus(*r.Status)
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}.
// Omitted fields keep their current value.
type UpdateTaskRequest struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending done"`
}

// Validate rejects a supplied blank title, then applies the struct tags.
func (r *UpdateTaskRequest) Validate() error {
	if r.Title != nil {
		if err := validateTitle(r.Title); err != nil {
			return err
		}
	}
	return shared.Validate.Struct(r)
}

// ToTaskUpdate converts the request into the service's partial update.
func (r *UpdateTaskRequest) ToTaskUpdate() (service.TaskUpdate, error) {
	update := service.TaskUpdate{Title: r.Title}
	if r.Status != nil {
		status, err := domain.ParseTaskStatus(*r.Status)
		if err != nil {
			return service.TaskUpdate{}, err
		}
		update.Status = &status
	}
	return update, nil
}

// validateTitle reports a missing or whitespace-only title with the same
// error the domain uses.
func validateTitle(title *string) error {
	if strings.TrimSpace(*title) == "" {
		return domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTaskTitle)
	}
	return nil
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:     task.ID,
		Title:  task.Title,
		Status: string(task.Status),
	}
}

// tasksToResponse converts a slice of tasks, never returning nil so the
// encoded body is [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
