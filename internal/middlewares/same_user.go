package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
)

// SameUserMiddleware returns a middleware that only lets a request through
// when the authenticated identity matches the {username} path parameter.
// It must run after AuthMiddleware. Usernames are case-sensitive.
func SameUserMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			current := GetUsernameFromContext(ctx)
			target := chi.URLParam(r, "username")

			if current == "" || current != target {
				logger.Log.Errorw("identity mismatch", "current", current, "target", target)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
