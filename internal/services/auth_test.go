package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		expectJWT    string
		wantErr      error
	}{
		{
			name:      "successful registration",
			username:  "alice",
			password:  "pass123",
			expectJWT: "token123",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:     "JWT generation error",
			username: "dan",
			password: "pass123",
			jwtErr:   errors.New("jwt error"),
			wantErr:  errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			if tt.existingUser == nil && tt.readerErr == nil && tt.writerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.username).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Register(context.Background(), tt.username, tt.password, "First", "Last", "+10000000000")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Register_StoresHashNotPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	password := "secret123"

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(nil, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", gomock.Any(), "Alice", "Smith", "+15550001111").
		DoAndReturn(func(_ context.Context, _, passwordHash, _, _, _ string) error {
			assert.NotEqual(t, password, passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)))
			return nil
		})

	mockJWT.EXPECT().
		Generate(gomock.Any(), "alice").
		Return("token123", nil)

	token, err := svc.Register(context.Background(), "alice", password, "Alice", "Smith", "+15550001111")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		touchErr  error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "unknown user fails uniformly",
			username:  "bob",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password fails uniformly",
			username:  "carol",
			user:      &models.UserDB{Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "touch login error",
			username:  "frank",
			user:      &models.UserDB{Username: "frank", PasswordHash: string(hashed)},
			touchErr:  errors.New("update error"),
			wantErr:   errors.New("update error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockWriter.EXPECT().
					TouchLogin(gomock.Any(), tt.username).
					Return(int64(1), tt.touchErr)

				if tt.touchErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), tt.username).
						Return(tt.expectJWT, tt.jwtErr)
				}
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	expiresAt := time.Now().Add(time.Hour)

	t.Run("revokes the token ID for its remaining lifetime", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "tokenstring").
			Return("alice", "jti-1", expiresAt, nil)

		mockRevoker.EXPECT().
			Revoke(gomock.Any(), "jti-1", gomock.Any()).
			Return(nil)

		err := svc.Logout(context.Background(), "tokenstring")
		assert.NoError(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "bad").
			Return("", "", time.Time{}, errors.New("invalid token"))

		err := svc.Logout(context.Background(), "bad")
		assert.Error(t, err)
	})

	t.Run("revoker error", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "tokenstring").
			Return("alice", "jti-2", expiresAt, nil)

		mockRevoker.EXPECT().
			Revoke(gomock.Any(), "jti-2", gomock.Any()).
			Return(errors.New("redis error"))

		err := svc.Logout(context.Background(), "tokenstring")
		assert.EqualError(t, err, "redis error")
	})
}
