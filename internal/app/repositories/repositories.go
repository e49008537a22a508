package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	SchoolRepository *SchoolRepository
	CourseRepository *CourseRepository
	RatingRepository *RatingRepository
	UserRepository   *UserRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository: NewSchoolRepository(db),
		CourseRepository: NewCourseRepository(db),
		RatingRepository: NewRatingRepository(db),
		UserRepository:   NewUserRepository(db),
	}
}
