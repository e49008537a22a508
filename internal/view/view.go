// Package view builds render-ready view models from backend course and
// rating records. Projections are pure; anything a renderer needs
// (labels, star counts, tag lists) is derived here so templates and the
// terminal front end stay dumb.
package view

import (
	"errors"
	"fmt"

	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/pkg/stars"
)

// ErrInvalidCourseData signals a course record too malformed to render.
// Callers must not attempt a partial card.
var ErrInvalidCourseData = errors.New("invalid course data")

// dateLayout matches the locale date shown under each review
const dateLayout = "January 2, 2006"

// CourseSummary is the card-level view of a course
type CourseSummary struct {
	Title              string
	Number             string
	School             string
	Tags               []string
	AverageRatingLabel string
	Stars              stars.Breakdown
	// RatingCountLabel is empty when the course has no ratings; the card
	// omits the count entirely in that state.
	RatingCountLabel string
}

// Review is one rendered review row on the detail page
type Review struct {
	Stars       stars.Breakdown
	RatingLabel string
	DateLabel   string
	Text        string
}

// CourseDetail is the full detail-page view of a course
type CourseDetail struct {
	Header  CourseSummary
	Reviews []Review
	// NoRatings distinguishes the "no ratings yet" placeholder from
	// loading and error states, which are tracked separately by callers.
	NoRatings bool
}

// NewCourseSummary projects a course record into its card view.
func NewCourseSummary(course dto.CourseWithRatings) (CourseSummary, error) {
	if course.CourseID == 0 || course.CourseName == "" {
		return CourseSummary{}, ErrInvalidCourseData
	}

	avg := 0.0
	if course.AverageRating != nil {
		avg = *course.AverageRating
	}

	tags := []string{course.Major, course.DeliveryMode}
	if course.DialoguesRequirement != nil && *course.DialoguesRequirement != "" {
		tags = append(tags, *course.DialoguesRequirement)
	}

	return CourseSummary{
		Title:              course.CourseName,
		Number:             course.CourseNumber,
		School:             course.SchoolName,
		Tags:               tags,
		AverageRatingLabel: fmt.Sprintf("%.1f", avg),
		Stars:              stars.ForRating(avg),
		RatingCountLabel:   ratingCountLabel(course.RatingCount),
	}, nil
}

// NewCourseDetail projects a course and its ratings into the detail view.
// Ratings are rendered in the order received; the backend owns display
// order. An empty list is a normal state, not an error.
func NewCourseDetail(course dto.CourseWithRatings, ratings []dto.RatingResponse) (CourseDetail, error) {
	header, err := NewCourseSummary(course)
	if err != nil {
		return CourseDetail{}, err
	}

	reviews := make([]Review, 0, len(ratings))
	for _, r := range ratings {
		reviews = append(reviews, Review{
			Stars:       stars.ForRating(float64(r.Rating)),
			RatingLabel: fmt.Sprintf("%d/5", r.Rating),
			DateLabel:   r.CreatedAt.Format(dateLayout),
			Text:        r.Review,
		})
	}

	return CourseDetail{
		Header:    header,
		Reviews:   reviews,
		NoRatings: len(reviews) == 0,
	}, nil
}

func ratingCountLabel(count int) string {
	switch {
	case count == 0:
		return ""
	case count == 1:
		return "1 rating"
	default:
		return fmt.Sprintf("%d ratings", count)
	}
}
