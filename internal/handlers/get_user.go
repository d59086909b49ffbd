package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// UserGetter defines the interface that the user profile service must implement.
type UserGetter interface {
	Get(ctx context.Context, username string) (*models.UserDB, error)
}

// GetUserResponse represents a user profile response
// swagger:model GetUserResponse
type GetUserResponse struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// GetUserErrorResponse represents an error response for the profile lookup
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler serving a user's own profile.
// @Summary Get user profile
// @Description Returns the profile of the user named in the path. Only the user themselves may fetch it.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} handlers.GetUserResponse "User profile"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Token identity does not match the path username"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Router /users/{username} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Get(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetUserResponse{
			Username:    user.Username,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Phone:       user.Phone,
			JoinAt:      user.JoinAt,
			LastLoginAt: user.LastLoginAt,
		})
	}
}
