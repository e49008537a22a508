package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/pkg/dberrors"
)

// Rating error types
var (
	ErrRatingCourseNotFound = errors.New("rated course not found")
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

// Create creates a new rating, optionally inside a transaction
func (r *RatingRepository) Create(ctx context.Context, tx pgx.Tx, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (course_id, rating, review, textbook)
		VALUES ($1, $2, $3, $4)
		RETURNING rating_id, created_at, updated_at
	`

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, rating.CourseID, rating.Rating, rating.Review, rating.Textbook)
	} else {
		row = r.db.QueryRow(ctx, query, rating.CourseID, rating.Rating, rating.Review, rating.Textbook)
	}

	if err := row.Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrRatingCourseNotFound
		}
		return fmt.Errorf("error creating rating: %w", err)
	}

	return nil
}

// GetByCourseID retrieves all ratings of a course, newest first. The
// order here is the display order; clients never re-sort.
func (r *RatingRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Rating, error) {
	query := `
		SELECT rating_id, course_id, rating, review, textbook, created_at, updated_at
		FROM ratings
		WHERE course_id = $1
		ORDER BY created_at DESC, rating_id DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*models.Rating
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.CourseID,
			&rating.Rating,
			&rating.Review,
			&rating.Textbook,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
