package services

import (
	"context"
	"fmt"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/repositories"
)

// StudentCounter counts non-staff accounts.
type StudentCounter interface {
	CountStudents(ctx context.Context) (int64, error)
}

// CourseLister lists and counts courses.
type CourseLister interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	Count(ctx context.Context) (int64, error)
}

// EnrollmentAggregator exposes enrollment totals.
type EnrollmentAggregator interface {
	Count(ctx context.Context) (int64, error)
	CountPerCourse(ctx context.Context) (map[int64]int64, error)
}

// TransactionAggregator exposes transaction totals.
type TransactionAggregator interface {
	Count(ctx context.Context) (int64, error)
	SumAmounts(ctx context.Context, isCredit bool) (int64, error)
}

// GradeAggregator exposes the grade distribution.
type GradeAggregator interface {
	Distribution(ctx context.Context) ([]repositories.GradeCount, error)
}

// DashboardService computes the staff overview aggregates.
type DashboardService struct {
	students     StudentCounter
	courses      CourseLister
	enrollments  EnrollmentAggregator
	transactions TransactionAggregator
	grades       GradeAggregator
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	students StudentCounter,
	courses CourseLister,
	enrollments EnrollmentAggregator,
	transactions TransactionAggregator,
	grades GradeAggregator,
) *DashboardService {
	return &DashboardService{
		students:     students,
		courses:      courses,
		enrollments:  enrollments,
		transactions: transactions,
		grades:       grades,
	}
}

// Overview assembles the full dashboard. Courses keep their code order
// and appear even when nothing is enrolled in them.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	var err error
	if resp.TotalStudents, err = s.students.CountStudents(ctx); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	if resp.TotalCourses, err = s.courses.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}
	if resp.TotalEnrollments, err = s.enrollments.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting enrollments: %w", err)
	}
	if resp.TotalTransactions, err = s.transactions.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting transactions: %w", err)
	}
	if resp.TotalCreditCents, err = s.transactions.SumAmounts(ctx, true); err != nil {
		return nil, fmt.Errorf("error summing credits: %w", err)
	}
	if resp.TotalDebitCents, err = s.transactions.SumAmounts(ctx, false); err != nil {
		return nil, fmt.Errorf("error summing debits: %w", err)
	}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	perCourse, err := s.enrollments.CountPerCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting per-course enrollments: %w", err)
	}

	resp.Courses = make([]dto.CourseEnrollmentCount, 0, len(courses))
	for _, course := range courses {
		course.EnrollmentCount = perCourse[course.ID]
		resp.Courses = append(resp.Courses, dto.CourseEnrollmentCount{
			Course:          course,
			EnrollmentCount: course.EnrollmentCount,
		})
	}

	distribution, err := s.grades.Distribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading grade distribution: %w", err)
	}
	resp.GradeLabels = make([]string, 0, len(distribution))
	resp.GradeCounts = make([]int64, 0, len(distribution))
	for _, bucket := range distribution {
		resp.GradeLabels = append(resp.GradeLabels, bucket.Grade)
		resp.GradeCounts = append(resp.GradeCounts, bucket.Count)
	}

	return resp, nil
}
