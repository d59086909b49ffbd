package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (username string, tokenID string, expiresAt time.Time, err error)
}

// RevocationChecker reports whether a token ID has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that validates the bearer token,
// rejects revoked tokens and attaches the resolved username to the request
// context for downstream handlers.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			username, tokenID, _, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			revoked, err := revocations.IsRevoked(ctx, tokenID)
			if err != nil {
				logger.Log.Errorw("revocation check failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.Log.Errorw("authorization failed", "err", "token revoked")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUsernameToContext(ctx, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// usernameContextKey is an unexported type for identity keys in context
type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// SetUsernameToContext stores the authenticated username in the context
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. Returns an empty string if not present.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
