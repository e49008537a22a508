package models

import "time"

// School represents a university whose courses can be rated
type School struct {
	ID        int64     `json:"school_id" db:"school_id"`
	Name      string    `json:"school_name" db:"school_name"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
