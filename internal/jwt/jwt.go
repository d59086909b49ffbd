package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a JWT token bound to the given username.
// Each token carries a unique token ID (jti) so it can be revoked later.
func (j *JWT) Generate(ctx context.Context, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(j.Exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUsername parses the token string and returns the subject username if the
// token is valid and not expired.
func (j *JWT) GetUsername(ctx context.Context, tokenString string) (string, error) {
	username, _, _, err := j.GetClaims(ctx, tokenString)
	return username, err
}

// GetClaims parses the token string and returns the subject username, the
// token ID and the expiration time. Expired or malformed tokens fail.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (username string, tokenID string, expiresAt time.Time, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return "", "", time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", time.Time{}, errors.New("invalid token")
	}

	username, ok = claims["sub"].(string)
	if !ok || username == "" {
		return "", "", time.Time{}, errors.New("subject not found in token")
	}

	tokenID, ok = claims["jti"].(string)
	if !ok || tokenID == "" {
		return "", "", time.Time{}, errors.New("token ID not found in token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", "", time.Time{}, errors.New("expiration not found in token")
	}

	return username, tokenID, exp.Time, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
