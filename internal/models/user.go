package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	Username     string    `json:"username" db:"username"`           // Primary key
	PasswordHash string    `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	FirstName    string    `json:"first_name" db:"first_name"`       // First name
	LastName     string    `json:"last_name" db:"last_name"`         // Last name
	Phone        string    `json:"phone" db:"phone"`                 // Phone number
	JoinAt       time.Time `json:"join_at" db:"join_at"`             // Registration timestamp
	LastLoginAt  time.Time `json:"last_login_at" db:"last_login_at"` // Last successful login timestamp
}

// UserSummaryDB carries the public-safe subset of a user record.
// It never exposes the password hash.
type UserSummaryDB struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
}
