package models

import "time"

// Course represents a rateable course offered by a school.
// AverageRating and RatingCount are aggregates computed from the ratings
// table; they are populated only by queries that ask for them.
type Course struct {
	ID                   int64     `json:"course_id" db:"course_id"`
	Name                 string    `json:"course_name" db:"course_name"`
	Number               string    `json:"course_number" db:"course_number"`
	Major                string    `json:"major" db:"major"`
	SchoolID             int64     `json:"school_id" db:"school_id"`
	DialoguesRequirement *string   `json:"dialogues_requirement" db:"dialogues_requirement"` // Nullable
	DeliveryMode         string    `json:"delivery_mode" db:"delivery_mode"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"-" db:"updated_at"`

	// Denormalized for display; populated by joins
	SchoolName string `json:"school_name,omitempty"`

	// Aggregates (populated when needed)
	AverageRating *float64 `json:"average_rating,omitempty"`
	RatingCount   int      `json:"rating_count"`
}
