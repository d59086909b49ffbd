package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// UserReadRepository provides read access to the users relation.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password_hash, first_name, last_name, phone, join_at, last_login_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListAll returns public summaries for every user, ordered by username.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.UserSummaryDB, error) {
	const query = `
		SELECT username, first_name, last_name, phone
		FROM users
		ORDER BY username
	`

	var users []models.UserSummaryDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository provides write access to the users relation. Writes run
// on the request transaction when the tx middleware has supplied one.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new user with freshly set join and last-login timestamps.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, firstName, lastName, phone string) error {
	const query = `
		INSERT INTO users (username, password_hash, first_name, last_name, phone, join_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{username, passwordHash, firstName, lastName, phone}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// The password hash is logged, never the plaintext.
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TouchLogin sets last_login_at to the current time. Returns the number of
// rows affected so callers can detect an unknown username.
func (r *UserWriteRepository) TouchLogin(ctx context.Context, username string) (int64, error) {
	const query = `
		UPDATE users
		SET last_login_at = NOW()
		WHERE username = $1
	`

	res, err := r.ext(ctx).ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
