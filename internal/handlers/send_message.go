package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// MessageSender defines the interface that the sending service must implement.
type MessageSender interface {
	Send(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error)
}

// SendMessageRequest represents the JSON body for sending a message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Recipient username
	// required: true
	// default: jane_doe
	ToUsername string `json:"to_username"`

	// Message text
	// required: true
	// default: hello
	Body string `json:"body"`
}

// SendMessageResponse represents the created message
// swagger:model SendMessageResponse
type SendMessageResponse struct {
	Message models.MessageDB `json:"message"`
}

// SendMessageErrorResponse represents an error response for sending
// swagger:model SendMessageErrorResponse
type SendMessageErrorResponse struct {
	// Error message
	// default: Recipient does not exist
	Error string `json:"error"`
}

// NewSendMessageHandler returns an HTTP handler for sending a message.
// The sender is always the authenticated caller, never a field of the body.
// @Summary Send a message
// @Description Creates a message from the authenticated user to the named recipient. The new message is unread.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message to send"
// @Success 201 {object} handlers.SendMessageResponse "Created message"
// @Failure 400 {object} handlers.SendMessageErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.SendMessageErrorResponse "Recipient does not exist"
// @Router /messages [post]
func NewSendMessageHandler(svc MessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendMessageRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.ToUsername == "" || req.Body == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendMessageErrorResponse{
				Error: "to_username and body are required",
			})
			return
		}

		fromUsername := middlewares.GetUsernameFromContext(r.Context())

		msg, err := svc.Send(r.Context(), fromUsername, req.ToUsername, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Recipient does not exist",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SendMessageResponse{
			Message: *msg,
		})
	}
}
