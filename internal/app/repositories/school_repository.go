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

// School error types
var (
	ErrSchoolNotFound      = errors.New("school not found")
	ErrSchoolAlreadyExists = errors.New("school with this name already exists")
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// Create creates a new school
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (school_name)
		VALUES ($1)
		RETURNING school_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, school.Name).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrSchoolAlreadyExists
		}
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetAll retrieves all schools ordered by name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `
		SELECT school_id, school_name, created_at, updated_at
		FROM schools
		ORDER BY school_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(
			&school.ID,
			&school.Name,
			&school.CreatedAt,
			&school.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT school_id, school_name, created_at, updated_at
		FROM schools
		WHERE school_id = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, id).Scan(
		&school.ID,
		&school.Name,
		&school.CreatedAt,
		&school.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// GetByName retrieves a school by exact name
func (r *SchoolRepository) GetByName(ctx context.Context, name string) (*models.School, error) {
	query := `
		SELECT school_id, school_name, created_at, updated_at
		FROM schools
		WHERE school_name = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, name).Scan(
		&school.ID,
		&school.Name,
		&school.CreatedAt,
		&school.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school by name: %w", err)
	}

	return &school, nil
}

// GetOrCreateByName returns the school with the given name, creating it
// when absent. A concurrent insert losing the unique-violation race falls
// back to re-reading the winner's row.
func (r *SchoolRepository) GetOrCreateByName(ctx context.Context, name string) (*models.School, error) {
	school, err := r.GetByName(ctx, name)
	if err == nil {
		return school, nil
	}
	if !errors.Is(err, ErrSchoolNotFound) {
		return nil, err
	}

	school = &models.School{Name: name}
	err = r.Create(ctx, school)
	if err == nil {
		return school, nil
	}
	if errors.Is(err, ErrSchoolAlreadyExists) {
		return r.GetByName(ctx, name)
	}
	return nil, err
}
