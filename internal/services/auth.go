package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, firstName, lastName, phone string) error
	TouchLogin(ctx context.Context, username string) (int64, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (username string, tokenID string, expiresAt time.Time, err error)
}

// TokenRevoker denylists issued tokens until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	tokens TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, tokens TokenRevoker) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		tokens: tokens,
	}
}

// Register creates a new user and returns a token bound to the registered
// username. The token subject is always the stored username, never a value
// taken from elsewhere in the request.
func (svc *AuthService) Register(ctx context.Context, username, password, firstName, lastName, phone string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), firstName, lastName, phone); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Login authenticates a user, updates the last-login timestamp and returns a
// JWT token. Unknown usernames and wrong passwords fail identically so the
// response never reveals whether a username exists.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if _, err := svc.writer.TouchLogin(ctx, username); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout denylists the presented token for its remaining lifetime.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	_, tokenID, expiresAt, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to parse token", "err", err)
		return err
	}

	if err := svc.tokens.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "err", err)
		return err
	}

	return nil
}
