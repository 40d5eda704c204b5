package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a grade for a student in a course. Multiple grades per
// (student, course) are allowed so retakes keep their history.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "course_id", "grade").
		Values(grade.StudentID, grade.CourseID, grade.Grade).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating grade: %w", err)
	}
	return id, nil
}

// GetByStudent retrieves a student's grades with course data, ordered by
// course code.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	sql, args, err := r.sb.Select(
		"g.id", "g.student_id", "g.course_id", "g.grade",
		"c.id", "c.code", "c.name", "c.description").
		From("grades g").
		Join("courses c ON c.id = g.course_id").
		Where(squirrel.Eq{"g.student_id": studentID}).
		OrderBy("c.code ASC", "g.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var grade models.Grade
		course := &models.Course{}
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.Grade,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Description,
		); err != nil {
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grade.Course = course
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}
	return grades, nil
}

// GradeCount is one bucket of the grade distribution.
type GradeCount struct {
	Grade string
	Count int64
}

// Distribution groups all grades by letter, ordered by label so the
// result is deterministic.
func (r *GradeRepository) Distribution(ctx context.Context) ([]GradeCount, error) {
	sql, args, err := r.sb.Select("grade", "COUNT(*)").
		From("grades").
		GroupBy("grade").
		OrderBy("grade ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build grade distribution query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying grade distribution: %w", err)
	}
	defer rows.Close()

	distribution := []GradeCount{}
	for rows.Next() {
		var bucket GradeCount
		if err := rows.Scan(&bucket.Grade, &bucket.Count); err != nil {
			return nil, fmt.Errorf("error scanning grade distribution row: %w", err)
		}
		distribution = append(distribution, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grade distribution rows: %w", err)
	}
	return distribution, nil
}
