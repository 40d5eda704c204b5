package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel for repository lookups.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all repository instances for dependency injection.
type Repositories struct {
	Users        *UserRepository
	Profiles     *ProfileRepository
	Courses      *CourseRepository
	Enrollments  *EnrollmentRepository
	Grades       *GradeRepository
	Transactions *TransactionRepository
	Library      *LibraryRepository
	Events       *EventRepository
	FAQs         *FAQRepository
	Pages        *PageRepository
}

// NewRepositories creates all repositories sharing the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Profiles:     NewProfileRepository(db),
		Courses:      NewCourseRepository(db),
		Enrollments:  NewEnrollmentRepository(db),
		Grades:       NewGradeRepository(db),
		Transactions: NewTransactionRepository(db),
		Library:      NewLibraryRepository(db),
		Events:       NewEventRepository(db),
		FAQs:         NewFAQRepository(db),
		Pages:        NewPageRepository(db),
	}
}
