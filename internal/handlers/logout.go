package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// TokenExtractor extracts the bearer token from a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Log out
// @Description Revokes the presented token for the remainder of its lifetime. Subsequent requests with the same token are rejected.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Token revoked"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.LogoutErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, tokens TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			// The auth middleware already validated the header; treat a
			// missing token here as unauthenticated all the same.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), tokenString); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
