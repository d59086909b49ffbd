package models

import (
	"time"
)

// MessageDB represents a message record in the database
type MessageDB struct {
	ID           int64      `json:"id" db:"id"`                       // Primary key
	FromUsername string     `json:"from_username" db:"from_username"` // Sender username
	ToUsername   string     `json:"to_username" db:"to_username"`     // Recipient username
	Body         string     `json:"body" db:"body"`                   // Message text
	SentAt       time.Time  `json:"sent_at" db:"sent_at"`             // Creation timestamp
	ReadAt       *time.Time `json:"read_at" db:"read_at"`             // Read timestamp, nil while unread
}

// MessageDetailDB is a message joined with the public summaries of both
// parties, as returned by the detail lookup.
type MessageDetailDB struct {
	ID       int64         `json:"id" db:"id"`
	Body     string        `json:"body" db:"body"`
	SentAt   time.Time     `json:"sent_at" db:"sent_at"`
	ReadAt   *time.Time    `json:"read_at" db:"read_at"`
	FromUser UserSummaryDB `json:"from_user" db:"from_user"`
	ToUser   UserSummaryDB `json:"to_user" db:"to_user"`
}

// MessageSentDB is a message listed from the sender's side; it embeds the
// recipient's public summary.
type MessageSentDB struct {
	ID     int64         `json:"id" db:"id"`
	Body   string        `json:"body" db:"body"`
	SentAt time.Time     `json:"sent_at" db:"sent_at"`
	ReadAt *time.Time    `json:"read_at" db:"read_at"`
	ToUser UserSummaryDB `json:"to_user" db:"to_user"`
}

// MessageReceivedDB is a message listed from the recipient's side; it embeds
// the sender's public summary.
type MessageReceivedDB struct {
	ID       int64         `json:"id" db:"id"`
	Body     string        `json:"body" db:"body"`
	SentAt   time.Time     `json:"sent_at" db:"sent_at"`
	ReadAt   *time.Time    `json:"read_at" db:"read_at"`
	FromUser UserSummaryDB `json:"from_user" db:"from_user"`
}
