package models

import "time"

// User defines an account that can log in; only admins can create courses
type User struct {
	ID           int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // Excluded from JSON
	Role         RoleType  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
