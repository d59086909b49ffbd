package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// SentMessagesLister lists messages a user has sent.
type SentMessagesLister interface {
	MessagesFrom(ctx context.Context, username string) ([]models.MessageSentDB, error)
}

// ReceivedMessagesLister lists messages addressed to a user.
type ReceivedMessagesLister interface {
	MessagesTo(ctx context.Context, username string) ([]models.MessageReceivedDB, error)
}

// SentMessagesResponse represents the sent-message listing response
// swagger:model SentMessagesResponse
type SentMessagesResponse struct {
	// Messages sent by the user, each with the recipient's summary
	Messages []models.MessageSentDB `json:"messages"`
}

// ReceivedMessagesResponse represents the received-message listing response
// swagger:model ReceivedMessagesResponse
type ReceivedMessagesResponse struct {
	// Messages addressed to the user, each with the sender's summary
	Messages []models.MessageReceivedDB `json:"messages"`
}

// UserMessagesErrorResponse represents an error response for message listings
// swagger:model UserMessagesErrorResponse
type UserMessagesErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewMessagesFromHandler returns an HTTP handler listing a user's sent messages.
// @Summary List sent messages
// @Description Returns messages sent by the user named in the path, ordered by send time. Only the user themselves may fetch them.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} handlers.SentMessagesResponse "Sent messages"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Token identity does not match the path username"
// @Failure 404 {object} handlers.UserMessagesErrorResponse "User not found"
// @Router /users/{username}/from [get]
func NewMessagesFromHandler(svc SentMessagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		msgs, err := svc.MessagesFrom(r.Context(), username)
		if err != nil {
			writeUserMessagesError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SentMessagesResponse{
			Messages: msgs,
		})
	}
}

// NewMessagesToHandler returns an HTTP handler listing a user's received messages.
// @Summary List received messages
// @Description Returns messages addressed to the user named in the path, ordered by send time. Only the user themselves may fetch them.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} handlers.ReceivedMessagesResponse "Received messages"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Token identity does not match the path username"
// @Failure 404 {object} handlers.UserMessagesErrorResponse "User not found"
// @Router /users/{username}/to [get]
func NewMessagesToHandler(svc ReceivedMessagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		msgs, err := svc.MessagesTo(r.Context(), username)
		if err != nil {
			writeUserMessagesError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReceivedMessagesResponse{
			Messages: msgs,
		})
	}
}

func writeUserMessagesError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UserMessagesErrorResponse{
			Error: "User not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UserMessagesErrorResponse{
			Error: "Internal server error",
		})
	}
}
