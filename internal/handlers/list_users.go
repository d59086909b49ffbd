package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// UsersLister defines the interface that the user listing service must implement.
type UsersLister interface {
	ListAll(ctx context.Context) ([]models.UserSummaryDB, error)
}

// ListUsersResponse represents the user listing response
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Public user summaries
	Users []models.UserSummaryDB `json:"users"`
}

// ListUsersErrorResponse represents an error response for the user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns public summaries (never password hashes) for every user, ordered by username.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ListUsersResponse "User summaries"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUsersResponse{
			Users: users,
		})
	}
}
