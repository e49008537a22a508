package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() RatingDraft {
	return RatingDraft{
		SchoolID: 1,
		CourseID: 42,
		Rating:   4,
		Review:   "Great course",
	}
}

func TestValidateHappyPath(t *testing.T) {
	sub, err := validDraft().Validate()
	require.NoError(t, err)
	require.NotNil(t, sub.Rating)
	assert.Nil(t, sub.NewCourse)

	assert.Equal(t, int64(42), sub.Rating.CourseID)
	assert.Equal(t, 4, sub.Rating.Rating)
	assert.Equal(t, "Great course", sub.Rating.Review)
	assert.Nil(t, sub.Rating.Textbook)
}

func TestValidateMissingRatingComesFirst(t *testing.T) {
	// Everything else is broken too; rating must still win
	draft := RatingDraft{Rating: 0, Review: ""}
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrMissingRating)

	draft = validDraft()
	draft.Rating = 6
	_, err = draft.Validate()
	assert.ErrorIs(t, err, ErrMissingRating)
}

func TestValidateMissingSchool(t *testing.T) {
	draft := validDraft()
	draft.SchoolID = 0
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrMissingSchool)
}

func TestValidateCourseSelection(t *testing.T) {
	// Neither an existing course nor complete new-course fields
	draft := validDraft()
	draft.CourseID = 0
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrIncompleteCourseSelection)

	// Partial new-course fields are not enough
	draft.CourseName = "Linear Algebra"
	draft.CourseNumber = "MATH 285"
	_, err = draft.Validate()
	assert.ErrorIs(t, err, ErrIncompleteCourseSelection)

	// Both selected at once is also a violation
	draft = validDraft()
	draft.CourseName = "Linear Algebra"
	draft.CourseNumber = "MATH 285"
	draft.Major = "Mathematics"
	_, err = draft.Validate()
	assert.ErrorIs(t, err, ErrIncompleteCourseSelection)
}

func TestValidateNewCourseSubmission(t *testing.T) {
	draft := RatingDraft{
		SchoolID:             1,
		SchoolName:           "Truman State University",
		CourseName:           "Linear Algebra",
		CourseNumber:         "MATH 285",
		Major:                "Mathematics",
		DeliveryMode:         "Hybrid",
		DialoguesRequirement: "STEM",
		Rating:               5,
		Review:               "Tough but fair",
	}

	sub, err := draft.Validate()
	require.NoError(t, err)
	require.NotNil(t, sub.NewCourse)
	assert.Nil(t, sub.Rating)

	assert.Equal(t, "Linear Algebra", sub.NewCourse.CourseName)
	assert.Equal(t, "Truman State University", sub.NewCourse.SchoolName)
	assert.Equal(t, "Hybrid", sub.NewCourse.DeliveryMode)
	require.NotNil(t, sub.NewCourse.DialoguesRequirement)
	assert.Equal(t, "STEM", *sub.NewCourse.DialoguesRequirement)
	assert.Equal(t, 5, sub.NewCourse.Rating)
}

func TestValidateNewCourseNeedsDeliveryMode(t *testing.T) {
	draft := RatingDraft{
		SchoolID:     1,
		CourseName:   "Linear Algebra",
		CourseNumber: "MATH 285",
		Major:        "Mathematics",
		Rating:       5,
		Review:       "Tough but fair",
	}
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrMissingDeliveryMode)
}

func TestValidateTextbookRequired(t *testing.T) {
	draft := validDraft()
	draft.TextbookRequired = true
	draft.Textbook = "   "
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrMissingTextbook)

	draft.Textbook = "Calculus, 8th ed."
	sub, err := draft.Validate()
	require.NoError(t, err)
	require.NotNil(t, sub.Rating.Textbook)
	assert.Equal(t, "Calculus, 8th ed.", *sub.Rating.Textbook)
}

func TestValidateScrubsStaleTextbook(t *testing.T) {
	// A value typed before the toggle was unchecked must not leak
	draft := validDraft()
	draft.TextbookRequired = false
	draft.Textbook = "Old Textbook"

	sub, err := draft.Validate()
	require.NoError(t, err)
	assert.Nil(t, sub.Rating.Textbook)
}

func TestValidateMissingReview(t *testing.T) {
	draft := validDraft()
	draft.Review = "  "
	_, err := draft.Validate()
	assert.ErrorIs(t, err, ErrMissingReview)
}
