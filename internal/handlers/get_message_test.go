package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageGetter(ctrl)

	sentAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	detail := models.MessageDetailDB{
		ID:       1,
		Body:     "hello",
		SentAt:   sentAt,
		FromUser: models.UserSummaryDB{Username: "alice", FirstName: "Alice"},
		ToUser:   models.UserSummaryDB{Username: "bob", FirstName: "Bob"},
	}

	tests := []struct {
		name         string
		messageID    string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			messageID: "1",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), "alice").
					Return(&detail, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &GetMessageResponse{
				Message: detail,
			},
		},
		{
			name:         "non-numeric id",
			messageID:    "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &GetMessageErrorResponse{
				Error: "invalid message id",
			},
		},
		{
			name:      "message not found",
			messageID: "99",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(99), "alice").
					Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &GetMessageErrorResponse{
				Error: "Message not found",
			},
		},
		{
			name:      "caller is a third party",
			messageID: "1",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), "alice").
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: &GetMessageErrorResponse{
				Error: "Access denied",
			},
		},
		{
			name:      "internal error",
			messageID: "1",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(1), "alice").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &GetMessageErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := requestWithURLParam(http.MethodGet, "/messages/"+tt.messageID, "id", tt.messageID)
			req = req.WithContext(middlewares.SetUsernameToContext(req.Context(), "alice"))
			w := httptest.NewRecorder()

			handler := NewGetMessageHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &GetMessageResponse{}
			default:
				respBody = &GetMessageErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
