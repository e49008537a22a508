package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/pkg/stars"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func sampleCourse() dto.CourseWithRatings {
	return dto.CourseWithRatings{
		CourseID:      42,
		CourseName:    "Intro to Computer Science",
		CourseNumber:  "CS 180",
		Major:         "Computer Science",
		SchoolID:      1,
		SchoolName:    "Truman State University",
		DeliveryMode:  "In-Person",
		AverageRating: floatPtr(4.2),
		RatingCount:   7,
	}
}

func TestNewCourseSummary(t *testing.T) {
	summary, err := NewCourseSummary(sampleCourse())
	require.NoError(t, err)

	assert.Equal(t, "Intro to Computer Science", summary.Title)
	assert.Equal(t, "CS 180", summary.Number)
	assert.Equal(t, "Truman State University", summary.School)
	assert.Equal(t, []string{"Computer Science", "In-Person"}, summary.Tags)
	assert.Equal(t, "4.2", summary.AverageRatingLabel)
	assert.Equal(t, stars.Breakdown{Full: 4, Half: false, Empty: 1}, summary.Stars)
	assert.Equal(t, "7 ratings", summary.RatingCountLabel)
}

func TestNewCourseSummaryDialoguesTag(t *testing.T) {
	course := sampleCourse()
	course.DialoguesRequirement = strPtr("STEM")

	summary, err := NewCourseSummary(course)
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Science", "In-Person", "STEM"}, summary.Tags)
}

func TestNewCourseSummaryNilAverageTreatedAsZero(t *testing.T) {
	course := sampleCourse()
	course.AverageRating = nil
	course.RatingCount = 0

	summary, err := NewCourseSummary(course)
	require.NoError(t, err)
	assert.Equal(t, "0.0", summary.AverageRatingLabel)
	assert.Equal(t, stars.Breakdown{Full: 0, Half: false, Empty: 5}, summary.Stars)
	assert.Empty(t, summary.RatingCountLabel)
}

func TestNewCourseSummarySingularCountLabel(t *testing.T) {
	course := sampleCourse()
	course.RatingCount = 1

	summary, err := NewCourseSummary(course)
	require.NoError(t, err)
	assert.Equal(t, "1 rating", summary.RatingCountLabel)
}

func TestNewCourseSummaryInvalidCourse(t *testing.T) {
	course := sampleCourse()
	course.CourseID = 0
	_, err := NewCourseSummary(course)
	assert.ErrorIs(t, err, ErrInvalidCourseData)

	course = sampleCourse()
	course.CourseName = ""
	_, err = NewCourseSummary(course)
	assert.ErrorIs(t, err, ErrInvalidCourseData)
}

func TestNewCourseDetailEmptyRatings(t *testing.T) {
	detail, err := NewCourseDetail(sampleCourse(), nil)
	require.NoError(t, err)

	assert.Len(t, detail.Reviews, 0)
	assert.True(t, detail.NoRatings)
}

func TestNewCourseDetailReviews(t *testing.T) {
	created := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	ratings := []dto.RatingResponse{
		{RatingID: 1, CourseID: 42, Rating: 5, Review: "Loved it", CreatedAt: created},
		{RatingID: 2, CourseID: 42, Rating: 3, Review: "Middling", CreatedAt: created.AddDate(0, 0, 1)},
	}

	detail, err := NewCourseDetail(sampleCourse(), ratings)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 2)
	assert.False(t, detail.NoRatings)

	// Order as received, never re-sorted
	assert.Equal(t, "Loved it", detail.Reviews[0].Text)
	assert.Equal(t, "5/5", detail.Reviews[0].RatingLabel)
	assert.Equal(t, "March 14, 2025", detail.Reviews[0].DateLabel)
	assert.Equal(t, stars.Breakdown{Full: 5, Half: false, Empty: 0}, detail.Reviews[0].Stars)
	assert.Equal(t, "Middling", detail.Reviews[1].Text)
	assert.Equal(t, "3/5", detail.Reviews[1].RatingLabel)
}
