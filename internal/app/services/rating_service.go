package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/app/repositories"
	"github.com/rosnMagar/RateMyClass/internal/pkg/apperrors"
	"github.com/rosnMagar/RateMyClass/internal/pkg/helpers"
)

// RatingService handles rating submissions
type RatingService struct {
	ratingRepo *repositories.RatingRepository
	courseRepo *repositories.CourseRepository
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratingRepo *repositories.RatingRepository, courseRepo *repositories.CourseRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		courseRepo: courseRepo,
	}
}

// CreateRating validates and stores a rating for an existing course
func (s *RatingService) CreateRating(ctx context.Context, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if req == nil {
		return nil, apperrors.NewBadRequestError("rating data is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewBadRequestError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Review) == "" {
		return nil, apperrors.NewBadRequestError("review is required")
	}

	exists, err := s.courseRepo.Exists(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	rating := &models.Rating{
		CourseID: req.CourseID,
		Rating:   req.Rating,
		Review:   req.Review,
		Textbook: helpers.NullableString(req.Textbook),
	}

	if err := s.ratingRepo.Create(ctx, nil, rating); err != nil {
		// The course can disappear between the existence check and the
		// insert; report it the same way
		if errors.Is(err, repositories.ErrRatingCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error creating rating: %w", err)
	}

	return rating, nil
}
