package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// MessageReadRepository provides read access to the messages relation.
type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// GetByID returns the message with both party summaries joined in,
// or nil if no such message exists.
func (r *MessageReadRepository) GetByID(ctx context.Context, id int64) (*models.MessageDetailDB, error) {
	const query = `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       f.username   AS "from_user.username",
		       f.first_name AS "from_user.first_name",
		       f.last_name  AS "from_user.last_name",
		       f.phone      AS "from_user.phone",
		       t.username   AS "to_user.username",
		       t.first_name AS "to_user.first_name",
		       t.last_name  AS "to_user.last_name",
		       t.phone      AS "to_user.phone"
		FROM messages AS m
		JOIN users AS f ON m.from_username = f.username
		JOIN users AS t ON m.to_username = t.username
		WHERE m.id = $1
	`

	var msg models.MessageDetailDB
	err := r.db.GetContext(ctx, &msg, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListFrom returns messages sent by the given user, each with the recipient's
// summary, ordered by sent_at then id.
func (r *MessageReadRepository) ListFrom(ctx context.Context, username string) ([]models.MessageSentDB, error) {
	const query = `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       t.username   AS "to_user.username",
		       t.first_name AS "to_user.first_name",
		       t.last_name  AS "to_user.last_name",
		       t.phone      AS "to_user.phone"
		FROM messages AS m
		JOIN users AS t ON m.to_username = t.username
		WHERE m.from_username = $1
		ORDER BY m.sent_at, m.id
	`

	var msgs []models.MessageSentDB
	err := r.db.SelectContext(ctx, &msgs, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result_count", len(msgs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return msgs, nil
}

// ListTo returns messages addressed to the given user, each with the sender's
// summary, ordered by sent_at then id.
func (r *MessageReadRepository) ListTo(ctx context.Context, username string) ([]models.MessageReceivedDB, error) {
	const query = `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       f.username   AS "from_user.username",
		       f.first_name AS "from_user.first_name",
		       f.last_name  AS "from_user.last_name",
		       f.phone      AS "from_user.phone"
		FROM messages AS m
		JOIN users AS f ON m.from_username = f.username
		WHERE m.to_username = $1
		ORDER BY m.sent_at, m.id
	`

	var msgs []models.MessageReceivedDB
	err := r.db.SelectContext(ctx, &msgs, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result_count", len(msgs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return msgs, nil
}

// MessageWriteRepository provides write access to the messages relation.
// Writes run on the request transaction when the tx middleware has supplied one.
type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

func (r *MessageWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new unread message and returns the created row.
func (r *MessageWriteRepository) Save(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageDB, error) {
	const query = `
		INSERT INTO messages (from_username, to_username, body, sent_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, from_username, to_username, body, sent_at, read_at
	`
	args := []any{fromUsername, toUsername, body}

	var msg models.MessageDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &msg, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// MarkRead transitions an unread message to read and returns its read
// timestamp. The update is conditional, so concurrent or repeated calls keep
// the first timestamp instead of moving it. Returns nil when no such message
// exists.
func (r *MessageWriteRepository) MarkRead(ctx context.Context, id int64) (*time.Time, error) {
	const query = `
		UPDATE messages
		SET read_at = COALESCE(read_at, NOW())
		WHERE id = $1
		RETURNING read_at
	`

	var readAt time.Time
	err := sqlx.GetContext(ctx, r.ext(ctx), &readAt, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &readAt, nil
}
