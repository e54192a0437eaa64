package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskUpdate carries the optional fields of a partial update.
// A nil field keeps the current value.
type TaskUpdate struct {
	Title  *string
	Status *domain.TaskStatus
}

// TaskService provides task-related use cases
type TaskService interface {
	// ListTasks returns all tasks
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask validates and persists a new task
	CreateTask(ctx context.Context, title string, status domain.TaskStatus) (domain.Task, error)

	// GetTask retrieves a task by its ID, or ErrTaskNotFound
	GetTask(ctx context.Context, id int64) (domain.Task, error)

	// UpdateTask changes the title and/or status of an existing task
	UpdateTask(ctx context.Context, id int64, update TaskUpdate) (domain.Task, error)

	// DeleteTask removes a task; deleting a missing task succeeds
	DeleteTask(ctx context.Context, id int64) error
}

const taskServiceComponent = "task_service"

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", taskServiceComponent),
	}, nil
}

// ListTasks returns every stored task
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask builds a validated task and persists it
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	status domain.TaskStatus,
) (domain.Task, error) {
	log := s.log(ctx)

	task, err := domain.NewTask(title, status)
	if err != nil {
		log.Debug("rejected invalid task", "error", err)
		return domain.Task{}, NewTaskServiceError("create_task", "invalid task", err)
	}

	saved, err := s.taskStore.Add(ctx, task)
	if err != nil {
		log.Error("failed to save task", "error", err)
		return domain.Task{}, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", saved.ID, "status", saved.Status)
	s.emit(ctx, events.TaskCreated, saved)
	return saved, nil
}

// GetTask retrieves a task by its ID
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task not found", "task_id", id)
		} else {
			s.log(ctx).Error("failed to retrieve task", "error", err, "task_id", id)
		}
		return domain.Task{}, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask merges the supplied fields into the current task and stores the
// result as a new value with the same ID
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	update TaskUpdate,
) (domain.Task, error) {
	log := s.log(ctx)

	current, err := s.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	title := current.Title
	if update.Title != nil {
		title = strings.TrimSpace(*update.Title)
	}

	status := current.Status
	if update.Status != nil {
		status = *update.Status
	}

	replacement := domain.Task{ID: current.ID, Title: title, Status: status}
	if err := replacement.Validate(); err != nil {
		log.Debug("rejected invalid task update", "error", err, "task_id", id)
		return domain.Task{}, NewTaskServiceError("update_task", "invalid task", err)
	}

	saved, err := s.taskStore.Update(ctx, replacement)
	if err != nil {
		log.Error("failed to save updated task", "error", err, "task_id", id)
		return domain.Task{}, NewTaskServiceError("update_task", "failed to save task", err)
	}

	log.Info("task updated", "task_id", saved.ID, "status", saved.Status)
	s.emit(ctx, events.TaskUpdated, saved)
	return saved, nil
}

// DeleteTask removes a task; a missing task is not an error
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		s.log(ctx).Error("failed to delete task", "error", err, "task_id", id)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Info("task deleted", "task_id", id)
	s.emit(ctx, events.TaskDeleted, domain.Task{ID: id})
	return nil
}

// emit publishes a task event. Handler failures are logged and not returned
// to the caller.
func (s *taskServiceImpl) emit(ctx context.Context, eventType events.EventType, task domain.Task) {
	event := events.NewTaskEvent(eventType, task)
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit task event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType,
			"task_id", task.ID)
	}
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextForComponent(ctx, s.logger, taskServiceComponent)
}
