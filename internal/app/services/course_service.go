package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/app/repositories"
	"github.com/rosnMagar/RateMyClass/internal/db"
	"github.com/rosnMagar/RateMyClass/internal/pkg/apperrors"
	"github.com/rosnMagar/RateMyClass/internal/pkg/helpers"
)

// CourseService handles course-related operations
type CourseService struct {
	database   *db.PostgresDB
	courseRepo *repositories.CourseRepository
	schoolRepo *repositories.SchoolRepository
	ratingRepo *repositories.RatingRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	database *db.PostgresDB,
	courseRepo *repositories.CourseRepository,
	schoolRepo *repositories.SchoolRepository,
	ratingRepo *repositories.RatingRepository,
) *CourseService {
	return &CourseService{
		database:   database,
		courseRepo: courseRepo,
		schoolRepo: schoolRepo,
		ratingRepo: ratingRepo,
	}
}

// SearchCourses retrieves courses with aggregates, optionally filtered
func (s *CourseService) SearchCourses(ctx context.Context, term string) ([]*models.Course, error) {
	courses, err := s.courseRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves one course with its aggregates
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("invalid course ID")
	}

	course, err := s.courseRepo.GetWithAggregates(ctx, id)
	if err != nil {
		if err == repositories.ErrCourseNotFound {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetCourseDetail retrieves one course plus all of its ratings in
// display order (newest first)
func (s *CourseService) GetCourseDetail(ctx context.Context, id int64) (*models.Course, []*models.Rating, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ratings, err := s.ratingRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving course ratings: %w", err)
	}

	return course, ratings, nil
}

// CreateCourse creates a course from an admin submission. The school is
// created by name when absent; the course and its initial rating are
// written in one transaction so a half-created course never appears.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validateCourseRequest(req); err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetOrCreateByName(ctx, strings.TrimSpace(req.SchoolName))
	if err != nil {
		return nil, fmt.Errorf("error resolving school: %w", err)
	}

	course := &models.Course{
		Name:                 strings.TrimSpace(req.CourseName),
		Number:               strings.TrimSpace(req.CourseNumber),
		Major:                strings.TrimSpace(req.Major),
		SchoolID:             school.ID,
		DialoguesRequirement: normalizeDialogues(req.DialoguesRequirement),
		DeliveryMode:         req.DeliveryMode,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.courseRepo.Create(ctx, tx, course); err != nil {
			return err
		}

		rating := &models.Rating{
			CourseID: course.ID,
			Rating:   req.Rating,
			Review:   req.Review,
			Textbook: helpers.NullableString(req.Textbook),
		}
		return s.ratingRepo.Create(ctx, tx, rating)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return s.courseRepo.GetWithAggregates(ctx, course.ID)
}

func validateCourseRequest(req *dto.CreateCourseRequest) error {
	if req == nil {
		return apperrors.NewBadRequestError("course data is required")
	}
	if strings.TrimSpace(req.CourseName) == "" ||
		strings.TrimSpace(req.CourseNumber) == "" ||
		strings.TrimSpace(req.Major) == "" {
		return apperrors.NewBadRequestError("course name, number and major are required")
	}
	if strings.TrimSpace(req.SchoolName) == "" {
		return apperrors.NewBadRequestError("school name is required")
	}
	if !models.ValidDeliveryMode(req.DeliveryMode) {
		return apperrors.NewBadRequestError("delivery mode must be Online, In-Person or Hybrid")
	}
	if req.DialoguesRequirement != nil && *req.DialoguesRequirement != "" &&
		!models.ValidDialoguesRequirement(*req.DialoguesRequirement) {
		return apperrors.NewBadRequestError("invalid dialogues requirement")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.NewBadRequestError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Review) == "" {
		return apperrors.NewBadRequestError("review is required")
	}
	return nil
}

// normalizeDialogues stores blank requirement values as NULL
func normalizeDialogues(req *string) *string {
	if req == nil || strings.TrimSpace(*req) == "" {
		return nil
	}
	return req
}
