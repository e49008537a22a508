package models

import "time"

// Rating is a single 1-5 review of a course. Immutable once created.
type Rating struct {
	ID        int64     `json:"rating_id" db:"rating_id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	Rating    int       `json:"rating" db:"rating"`
	Review    string    `json:"review" db:"review"`
	Textbook  *string   `json:"textbook,omitempty" db:"textbook"` // Nullable
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
