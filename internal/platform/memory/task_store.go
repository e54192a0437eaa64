package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskStoreComponent = "task_store"

// TaskStore implements the store.TaskStore interface with a map keyed by
// sequential IDs.
//
// A single mutex guards both the ID sequence and the map, so concurrent
// requests never race on either.
type TaskStore struct {
	mu     sync.RWMutex
	items  map[int64]domain.Task
	seq    int64
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory task store whose first assigned ID is 1.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		items:  make(map[int64]domain.Task),
		seq:    1,
		logger: logger.With(slog.String("component", taskStoreComponent)),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List.
// Tasks are returned in ascending ID order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "context done", err)
	}

	s.mu.RLock()
	tasks := make([]domain.Task, 0, len(s.items))
	for _, t := range s.items {
		tasks = append(tasks, t)
	}
	s.mu.RUnlock()

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	s.log(ctx).Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, store.NewStoreError("task", "get", "context done", err)
	}

	s.mu.RLock()
	t, ok := s.items[id]
	s.mu.RUnlock()

	if !ok {
		s.log(ctx).Debug("task not found", slog.Int64("task_id", id))
		return domain.Task{}, store.ErrTaskNotFound
	}
	return t, nil
}

// Add implements store.TaskStore.Add.
// The ID on the argument is ignored; the stored copy gets the next sequence value.
func (s *TaskStore) Add(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, store.NewStoreError("task", "add", "context done", err)
	}

	s.mu.Lock()
	id := s.seq
	s.seq++
	saved := domain.Task{ID: id, Title: task.Title, Status: task.Status}
	s.items[id] = saved
	s.mu.Unlock()

	s.log(ctx).Debug("task added",
		slog.Int64("task_id", id),
		slog.String("status", string(saved.Status)))
	return saved, nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if no task with task.ID exists.
func (s *TaskStore) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, store.NewStoreError("task", "update", "context done", err)
	}

	ok := false
	if task.IsPersisted() {
		s.mu.Lock()
		_, ok = s.items[task.ID]
		if ok {
			s.items[task.ID] = task
		}
		s.mu.Unlock()
	}

	if !ok {
		s.log(ctx).Debug("task not found for update",
			slog.Int64("task_id", task.ID))
		return domain.Task{}, store.ErrTaskNotFound
	}
	return task, nil
}

// Delete implements store.TaskStore.Delete.
// Deleting a missing task is a no-op.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("task", "delete", "context done", err)
	}

	s.mu.Lock()
	_, existed := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()

	s.log(ctx).Debug("task delete",
		slog.Int64("task_id", id),
		slog.Bool("existed", existed))
	return nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *TaskStore) log(ctx context.Context) *slog.Logger {
	return logger.FromContextForComponent(ctx, s.logger, taskStoreComponent)
}
