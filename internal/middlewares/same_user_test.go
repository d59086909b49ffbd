package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSameUserMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		currentUser   string
		pathUsername  string
		expectedCode  int
		expectNextRun bool
	}{
		{
			name:          "identity matches path",
			currentUser:   "alice",
			pathUsername:  "alice",
			expectedCode:  http.StatusOK,
			expectNextRun: true,
		},
		{
			name:         "identity does not match path",
			currentUser:  "alice",
			pathUsername: "bob",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "case sensitive comparison",
			currentUser:  "alice",
			pathUsername: "Alice",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "no authenticated identity",
			currentUser:  "",
			pathUsername: "alice",
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.pathUsername, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("username", tt.pathUsername)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.currentUser != "" {
				ctx = SetUsernameToContext(ctx, tt.currentUser)
			}
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()

			handler := SameUserMiddleware()(next)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNextRun, nextCalled)
		})
	}
}
