package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	mockTokens := NewMockTokenExtractor(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockTokens.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockSvc.EXPECT().
					Logout(gomock.Any(), "JWT_TOKEN").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LogoutResponse{
				Message: "Logged out",
			},
		},
		{
			name: "missing token",
			mockSetup: func() {
				mockTokens.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockTokens.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockSvc.EXPECT().
					Logout(gomock.Any(), "JWT_TOKEN").
					Return(errors.New("redis error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &LogoutErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			w := httptest.NewRecorder()

			handler := NewLogoutHandler(mockSvc, mockTokens)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != nil {
				var respBody interface{}
				switch tt.expectedCode {
				case http.StatusOK:
					respBody = &LogoutResponse{}
				default:
					respBody = &LogoutErrorResponse{}
				}
				err := json.Unmarshal(w.Body.Bytes(), respBody)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, respBody)
			}
		})
	}
}
