package dto

import "time"

// CreateRatingRequest is the payload for rating an existing course
type CreateRatingRequest struct {
	CourseID int64   `json:"course_id" binding:"required"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Review   string  `json:"review" binding:"required"`
	Textbook *string `json:"textbook"`
}

// RatingResponse is the public shape of a single rating
type RatingResponse struct {
	RatingID  int64     `json:"rating_id"`
	CourseID  int64     `json:"course_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Textbook  *string   `json:"textbook,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
