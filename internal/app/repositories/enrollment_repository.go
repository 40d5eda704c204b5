package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/pkg/dberrors"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// ErrAlreadyEnrolled is returned on a duplicate (student, course) pair.
var ErrAlreadyEnrolled = errors.New("student already enrolled in course")

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create enrolls a student in a course. The unique (student, course)
// constraint rejects duplicate enrollments.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(enrollment.StudentID, enrollment.CourseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_course_key") {
			return 0, ErrAlreadyEnrolled
		}
		logger.Error().Err(err).Int64("studentID", enrollment.StudentID).Int64("courseID", enrollment.CourseID).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}
	return id, nil
}

// GetByStudent retrieves a student's enrollments with course data,
// ordered by course code.
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.enrolled_at",
		"c.id", "c.code", "c.name", "c.description").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("c.code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.Enrollment{}
	for rows.Next() {
		var enrollment models.Enrollment
		course := &models.Course{}
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.EnrolledAt,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Description,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollment.Course = course
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}

// Count returns the total number of enrollments
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM enrollments").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// CountPerCourse returns the enrollment count for each course that has
// at least one enrollment. Courses without enrollments are absent here;
// the dashboard service fills in the zeros.
func (r *EnrollmentRepository) CountPerCourse(ctx context.Context) (map[int64]int64, error) {
	sql, args, err := r.sb.Select("course_id", "COUNT(*)").
		From("enrollments").
		GroupBy("course_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build per-course count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying per-course counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var courseID, count int64
		if err := rows.Scan(&courseID, &count); err != nil {
			return nil, fmt.Errorf("error scanning per-course count row: %w", err)
		}
		counts[courseID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating per-course count rows: %w", err)
	}
	return counts, nil
}
