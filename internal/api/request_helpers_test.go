package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// requestWithID builds a request whose chi route context carries {id}.
func requestWithID(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		expectedID int64
		expectErr  error
	}{
		{name: "valid id", param: "42", expectedID: 42},
		{name: "max int64", param: "9223372036854775807", expectedID: 9223372036854775807},
		{name: "empty", param: "", expectErr: domain.ErrValidation},
		{name: "zero", param: "0", expectErr: domain.ErrInvalidID},
		{name: "negative", param: "-3", expectErr: domain.ErrInvalidID},
		{name: "not a number", param: "abc", expectErr: domain.ErrInvalidID},
		{name: "overflow", param: "9223372036854775808", expectErr: domain.ErrInvalidID},
		{name: "decimal", param: "1.5", expectErr: domain.ErrInvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := getPathID(requestWithID(http.MethodGet, "/tasks/x", tc.param), "id")

			if tc.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				assert.True(t, errors.Is(err, domain.ErrValidation), "path errors are validation errors")
				assert.Zero(t, id)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}
