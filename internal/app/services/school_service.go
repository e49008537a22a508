package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/app/repositories"
	"github.com/rosnMagar/RateMyClass/internal/pkg/apperrors"
)

// SchoolService handles school-related operations
type SchoolService struct {
	schoolRepo *repositories.SchoolRepository
	courseRepo *repositories.CourseRepository
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo *repositories.SchoolRepository, courseRepo *repositories.CourseRepository) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		courseRepo: courseRepo,
	}
}

// GetAllSchools retrieves all schools
func (s *SchoolService) GetAllSchools(ctx context.Context) ([]*models.School, error) {
	schools, err := s.schoolRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	return schools, nil
}

// GetSchoolCourses retrieves the courses of one school. The school must
// exist; an unknown ID is a not-found, not an empty list.
func (s *SchoolService) GetSchoolCourses(ctx context.Context, schoolID int64) ([]*models.Course, error) {
	if schoolID <= 0 {
		return nil, apperrors.NewBadRequestError("invalid school ID")
	}

	if _, err := s.schoolRepo.GetByID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error checking school: %w", err)
	}

	courses, err := s.courseRepo.GetBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving school courses: %w", err)
	}
	return courses, nil
}
