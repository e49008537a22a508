package dto

import "time"

// CreateCourseRequest is the admin course-creation payload. It carries the
// initial rating alongside the course fields, and the school is referenced
// by name so a missing school is created on the fly.
type CreateCourseRequest struct {
	CourseName           string  `json:"course_name" binding:"required"`
	CourseNumber         string  `json:"course_number" binding:"required"`
	Major                string  `json:"major" binding:"required"`
	SchoolName           string  `json:"school_name" binding:"required"`
	DialoguesRequirement *string `json:"dialogues_requirement"`
	DeliveryMode         string  `json:"delivery_mode" binding:"required"`
	Rating               int     `json:"rating" binding:"required,min=1,max=5"`
	Review               string  `json:"review" binding:"required"`
	Textbook             *string `json:"textbook"`
}

// CourseListItem is the subset of course fields used to populate the
// course dropdown for a selected school
type CourseListItem struct {
	CourseID     int64  `json:"course_id"`
	CourseName   string `json:"course_name"`
	CourseNumber string `json:"course_number"`
	Major        string `json:"major"`
}

// CourseWithRatings is a course together with its rating aggregates,
// as rendered on the browse/search cards
type CourseWithRatings struct {
	CourseID             int64     `json:"course_id"`
	CourseName           string    `json:"course_name"`
	CourseNumber         string    `json:"course_number"`
	Major                string    `json:"major"`
	SchoolID             int64     `json:"school_id"`
	SchoolName           string    `json:"school_name"`
	DialoguesRequirement *string   `json:"dialogues_requirement"`
	DeliveryMode         string    `json:"delivery_mode"`
	AverageRating        *float64  `json:"average_rating"`
	RatingCount          int       `json:"rating_count"`
	CreatedAt            time.Time `json:"created_at"`
}

// CourseDetailResponse is a course with its full list of ratings embedded.
// Ratings keep the order the repository returned them in.
type CourseDetailResponse struct {
	CourseWithRatings
	Ratings []RatingResponse `json:"ratings"`
}
