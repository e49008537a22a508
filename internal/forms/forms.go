// Package forms validates rating and course submission drafts before they
// are dispatched to the backend. Validation short-circuits on the first
// violation, matching the one-message-at-a-time behavior of the forms.
package forms

import (
	"errors"
	"strings"

	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
)

// Validation errors; messages are shown to the user as-is
var (
	ErrMissingRating             = errors.New("please select a rating before submitting")
	ErrMissingSchool             = errors.New("please select a school")
	ErrIncompleteCourseSelection = errors.New("please select a course or fill in all new course details")
	ErrMissingDeliveryMode       = errors.New("please choose a delivery mode")
	ErrMissingTextbook           = errors.New("please enter the textbook title or ISBN since textbook is required")
	ErrMissingReview             = errors.New("please write a review")
)

// RatingDraft is the form state behind a rating submission. The author
// either picks an existing course (CourseID) or supplies the full
// new-course triple; never both.
type RatingDraft struct {
	SchoolID   int64
	SchoolName string

	CourseID     int64
	CourseName   string
	CourseNumber string
	Major        string

	DialoguesRequirement string
	DeliveryMode         string

	Rating           int
	Review           string
	TextbookRequired bool
	Textbook         string
}

// Submission is the normalized, dispatch-ready result of a valid draft.
// Exactly one of the two payloads is set.
type Submission struct {
	// Rating targets POST /ratings for an existing course
	Rating *dto.CreateRatingRequest
	// NewCourse targets POST /courses and carries the initial rating
	NewCourse *dto.CreateCourseRequest
}

// Validate checks the draft and returns a normalized submission. The first
// violation found is returned; nothing is aggregated. Textbook is forced
// to nil whenever TextbookRequired is false so a stale value entered
// before the toggle was cleared never leaks into the payload.
func (d RatingDraft) Validate() (Submission, error) {
	if d.Rating < 1 || d.Rating > 5 {
		return Submission{}, ErrMissingRating
	}

	if d.SchoolID == 0 {
		return Submission{}, ErrMissingSchool
	}

	existing := d.CourseID != 0
	newComplete := strings.TrimSpace(d.CourseName) != "" &&
		strings.TrimSpace(d.CourseNumber) != "" &&
		strings.TrimSpace(d.Major) != ""

	if existing == newComplete {
		return Submission{}, ErrIncompleteCourseSelection
	}

	if !existing && !models.ValidDeliveryMode(d.DeliveryMode) {
		return Submission{}, ErrMissingDeliveryMode
	}

	if d.TextbookRequired && strings.TrimSpace(d.Textbook) == "" {
		return Submission{}, ErrMissingTextbook
	}

	if strings.TrimSpace(d.Review) == "" {
		return Submission{}, ErrMissingReview
	}

	textbook := d.normalizedTextbook()

	if existing {
		return Submission{
			Rating: &dto.CreateRatingRequest{
				CourseID: d.CourseID,
				Rating:   d.Rating,
				Review:   d.Review,
				Textbook: textbook,
			},
		}, nil
	}

	var dialogues *string
	if models.ValidDialoguesRequirement(d.DialoguesRequirement) {
		req := d.DialoguesRequirement
		dialogues = &req
	}

	return Submission{
		NewCourse: &dto.CreateCourseRequest{
			CourseName:           strings.TrimSpace(d.CourseName),
			CourseNumber:         strings.TrimSpace(d.CourseNumber),
			Major:                strings.TrimSpace(d.Major),
			SchoolName:           d.SchoolName,
			DialoguesRequirement: dialogues,
			DeliveryMode:         d.DeliveryMode,
			Rating:               d.Rating,
			Review:               d.Review,
			Textbook:             textbook,
		},
	}, nil
}

func (d RatingDraft) normalizedTextbook() *string {
	if !d.TextbookRequired {
		return nil
	}
	t := strings.TrimSpace(d.Textbook)
	if t == "" {
		return nil
	}
	return &t
}
