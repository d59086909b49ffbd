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
	"github.com/sbilibin2017/gw-messenger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMarkReadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReadMarker(ctrl)

	readAt := time.Date(2024, 6, 1, 12, 5, 0, 0, time.UTC)

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
					MarkRead(gomock.Any(), int64(1), "bob").
					Return(&readAt, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &MarkReadResponse{
				ID:     1,
				ReadAt: readAt,
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
					MarkRead(gomock.Any(), int64(99), "bob").
					Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &GetMessageErrorResponse{
				Error: "Message not found",
			},
		},
		{
			name:      "caller is not the recipient",
			messageID: "1",
			mockSetup: func() {
				mockSvc.EXPECT().
					MarkRead(gomock.Any(), int64(1), "bob").
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
					MarkRead(gomock.Any(), int64(1), "bob").
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

			req := requestWithURLParam(http.MethodPost, "/messages/"+tt.messageID+"/read", "id", tt.messageID)
			req = req.WithContext(middlewares.SetUsernameToContext(req.Context(), "bob"))
			w := httptest.NewRecorder()

			handler := NewMarkReadHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &MarkReadResponse{}
			default:
				respBody = &GetMessageErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
