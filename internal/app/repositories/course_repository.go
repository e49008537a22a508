package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rosnMagar/RateMyClass/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// courseAggregateQuery selects courses with their school name and rating
// aggregates. AVG over zero ratings is NULL; callers treat that as zero
// for display.
const courseAggregateQuery = `
	SELECT c.course_id, c.course_name, c.course_number, c.major,
	       c.school_id, s.school_name, c.dialogues_requirement,
	       c.delivery_mode, c.created_at,
	       AVG(r.rating)::float8 AS average_rating,
	       COUNT(r.rating_id) AS rating_count
	FROM courses c
	JOIN schools s ON s.school_id = c.school_id
	LEFT JOIN ratings r ON r.course_id = c.course_id
`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course, optionally inside a transaction
func (r *CourseRepository) Create(ctx context.Context, tx pgx.Tx, course *models.Course) error {
	query := `
		INSERT INTO courses (course_name, course_number, major, school_id, dialogues_requirement, delivery_mode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING course_id, created_at, updated_at
	`

	row := r.queryRow(ctx, tx, query,
		course.Name,
		course.Number,
		course.Major,
		course.SchoolID,
		course.DialoguesRequirement,
		course.DeliveryMode,
	)
	if err := row.Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetBySchoolID retrieves the courses of a school, subset fields only
func (r *CourseRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Course, error) {
	query := `
		SELECT course_id, course_name, course_number, major
		FROM courses
		WHERE school_id = $1
		ORDER BY course_number
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Number,
			&course.Major,
		); err != nil {
			return nil, err
		}
		course.SchoolID = schoolID
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Search retrieves courses with aggregates, filtered by an optional
// case-insensitive term over name, number, major and school name
func (r *CourseRepository) Search(ctx context.Context, term string) ([]*models.Course, error) {
	query := courseAggregateQuery
	args := []interface{}{}

	if term != "" {
		query += `
	WHERE c.course_name ILIKE '%' || $1 || '%'
	   OR c.course_number ILIKE '%' || $1 || '%'
	   OR c.major ILIKE '%' || $1 || '%'
	   OR s.school_name ILIKE '%' || $1 || '%'
`
		args = append(args, term)
	}

	query += `
	GROUP BY c.course_id, s.school_name
	ORDER BY c.created_at DESC
`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourseAggregate(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetWithAggregates retrieves one course with its rating aggregates
func (r *CourseRepository) GetWithAggregates(ctx context.Context, id int64) (*models.Course, error) {
	query := courseAggregateQuery + `
	WHERE c.course_id = $1
	GROUP BY c.course_id, s.school_name
`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrCourseNotFound
	}

	return scanCourseAggregate(rows)
}

// Exists checks whether a course with the given ID exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

func (r *CourseRepository) queryRow(ctx context.Context, tx pgx.Tx, query string, args ...interface{}) pgx.Row {
	if tx != nil {
		return tx.QueryRow(ctx, query, args...)
	}
	return r.db.QueryRow(ctx, query, args...)
}

func scanCourseAggregate(rows pgx.Rows) (*models.Course, error) {
	var course models.Course
	if err := rows.Scan(
		&course.ID,
		&course.Name,
		&course.Number,
		&course.Major,
		&course.SchoolID,
		&course.SchoolName,
		&course.DialoguesRequirement,
		&course.DeliveryMode,
		&course.CreatedAt,
		&course.AverageRating,
		&course.RatingCount,
	); err != nil {
		return nil, err
	}
	return &course, nil
}
