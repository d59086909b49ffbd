package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
)

// ReadMarker defines the interface that the mark-read service must implement.
type ReadMarker interface {
	MarkRead(ctx context.Context, id int64, requester string) (*time.Time, error)
}

// MarkReadResponse represents the read transition response
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	// Message ID
	ID int64 `json:"id"`

	// Read timestamp; set once, repeated calls return the same value
	ReadAt time.Time `json:"read_at"`
}

// NewMarkReadHandler returns an HTTP handler marking a message as read.
// @Summary Mark a message as read
// @Description Sets the message's read timestamp. Only the recipient may do this; the transition happens once and repeated calls return the original timestamp.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} handlers.MarkReadResponse "Read timestamp"
// @Failure 400 {object} handlers.GetMessageErrorResponse "Invalid message ID"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.GetMessageErrorResponse "Caller is not the recipient"
// @Failure 404 {object} handlers.GetMessageErrorResponse "Message not found"
// @Router /messages/{id}/read [post]
func NewMarkReadHandler(svc ReadMarker) http.HandlerFunc {
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

		readAt, err := svc.MarkRead(r.Context(), id, requester)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkReadResponse{
			ID:     id,
			ReadAt: *readAt,
		})
	}
}
