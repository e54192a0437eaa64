package api

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlowRouter wires the handler to the real service and in-memory store.
func newFlowRouter(t *testing.T) (http.Handler, *memory.TaskStore) {
	t.Helper()
	_, log := logger.NewTestLogger(t)

	taskStore := memory.NewTaskStore(log)
	svc, err := service.NewTaskService(taskStore, events.NewInMemoryEventEmitter(log), log)
	require.NoError(t, err)

	return newTestRouter(svc), taskStore
}

func TestTaskFlow_CRUDScenario(t *testing.T) {
	router, _ := newFlowRouter(t)

	w := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"Tarea 1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"title":"Tarea 1","status":"pending"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Tarea 1","status":"pending"}]`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"title":"Tarea 1","status":"pending"}`, w.Body.String())

	w = doRequest(t, router, http.MethodPut, "/tasks/1", `{"status":"done"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"title":"Tarea 1","status":"done"}`, w.Body.String())

	w = doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again is still a success
	w = doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTaskFlow_IDsAreNotReused(t *testing.T) {
	router, _ := newFlowRouter(t)

	doRequest(t, router, http.MethodPost, "/tasks", `{"title":"a"}`)
	doRequest(t, router, http.MethodDelete, "/tasks/1", "")

	w := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"b"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":2,"title":"b","status":"pending"}`, w.Body.String())
}

func TestTaskFlow_UpdateUnknownTask(t *testing.T) {
	router, _ := newFlowRouter(t)

	w := doRequest(t, router, http.MethodPut, "/tasks/42", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskFlow_ConcurrentCreates(t *testing.T) {
	router, taskStore := newFlowRouter(t)

	const n = 50
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doRequest(t, router, http.MethodPost, "/tasks", fmt.Sprintf(`{"title":"task %d"}`, i))
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}
	assert.Equal(t, n, taskStore.Len())
}
