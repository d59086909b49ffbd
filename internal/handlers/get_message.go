package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
)

// MessageGetter defines the interface that the message lookup service must implement.
type MessageGetter interface {
	Get(ctx context.Context, id int64, requester string) (*models.MessageDetailDB, error)
}

// GetMessageResponse represents a message detail response
// swagger:model GetMessageResponse
type GetMessageResponse struct {
	Message models.MessageDetailDB `json:"message"`
}

// GetMessageErrorResponse represents an error response for the message lookup
// swagger:model GetMessageErrorResponse
type GetMessageErrorResponse struct {
	// Error message
	// default: Message not found
	Error string `json:"error"`
}

// NewGetMessageHandler returns an HTTP handler fetching a single message.
// @Summary Get a message
// @Description Returns a message with both party summaries. Only the sender or the recipient may fetch it.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} handlers.GetMessageResponse "Message detail"
// @Failure 400 {object} handlers.GetMessageErrorResponse "Invalid message ID"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.GetMessageErrorResponse "Caller is neither sender nor recipient"
// @Failure 404 {object} handlers.GetMessageErrorResponse "Message not found"
// @Router /messages/{id} [get]
func NewGetMessageHandler(svc MessageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetMessageErrorResponse{
				Error: "invalid message id",
			})
			return
		}

		requester := middlewares.GetUsernameFromContext(r.Context())

		msg, err := svc.Get(r.Context(), id, requester)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetMessageResponse{
			Message: *msg,
		})
	}
}

// writeMessageError maps message service failures onto HTTP statuses shared
// by the message detail and mark-read handlers.
func writeMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMessageNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(GetMessageErrorResponse{
			Error: "Message not found",
		})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(GetMessageErrorResponse{
			Error: "Access denied",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetMessageErrorResponse{
			Error: "Internal server error",
		})
	}
}
