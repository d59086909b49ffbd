package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUsersLister(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAll(gomock.Any()).
					Return([]models.UserSummaryDB{
						{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "+15550001111"},
						{Username: "bob", FirstName: "Bob", LastName: "Jones", Phone: "+15550002222"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ListUsersResponse{
				Users: []models.UserSummaryDB{
					{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "+15550001111"},
					{Username: "bob", FirstName: "Bob", LastName: "Jones", Phone: "+15550002222"},
				},
			},
		},
		{
			name: "empty directory",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAll(gomock.Any()).
					Return([]models.UserSummaryDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ListUsersResponse{
				Users: []models.UserSummaryDB{},
			},
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAll(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ListUsersErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			w := httptest.NewRecorder()

			handler := NewListUsersHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ListUsersResponse{}
			default:
				respBody = &ListUsersErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
