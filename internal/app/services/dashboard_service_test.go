package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/repositories"
)

type fakeStudentCounter struct{ students int64 }

func (f *fakeStudentCounter) CountStudents(_ context.Context) (int64, error) {
	return f.students, nil
}

type fakeCourseLister struct{ courses []models.Course }

func (f *fakeCourseLister) GetAll(_ context.Context) ([]models.Course, error) { return f.courses, nil }
func (f *fakeCourseLister) Count(_ context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

type fakeEnrollmentAgg struct{ perCourse map[int64]int64 }

func (f *fakeEnrollmentAgg) Count(_ context.Context) (int64, error) {
	var total int64
	for _, n := range f.perCourse {
		total += n
	}
	return total, nil
}

func (f *fakeEnrollmentAgg) CountPerCourse(_ context.Context) (map[int64]int64, error) {
	return f.perCourse, nil
}

type fakeTransactionAgg struct {
	count   int64
	credits int64
	debits  int64
}

func (f *fakeTransactionAgg) Count(_ context.Context) (int64, error) { return f.count, nil }
func (f *fakeTransactionAgg) SumAmounts(_ context.Context, isCredit bool) (int64, error) {
	if isCredit {
		return f.credits, nil
	}
	return f.debits, nil
}

type fakeGradeAgg struct{ buckets []repositories.GradeCount }

func (f *fakeGradeAgg) Distribution(_ context.Context) ([]repositories.GradeCount, error) {
	return f.buckets, nil
}

func TestDashboardOverview(t *testing.T) {
	svc := NewDashboardService(
		&fakeStudentCounter{students: 42},
		&fakeCourseLister{courses: []models.Course{
			{ID: 1, Code: "CSC101"},
			{ID: 2, Code: "ENG105"},
			{ID: 3, Code: "MTH201"},
		}},
		&fakeEnrollmentAgg{perCourse: map[int64]int64{1: 30, 3: 12}},
		&fakeTransactionAgg{count: 9, credits: 500000, debits: 254500},
		&fakeGradeAgg{buckets: []repositories.GradeCount{
			{Grade: "A", Count: 10},
			{Grade: "B+", Count: 7},
			{Grade: "C", Count: 3},
		}},
	)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.TotalStudents)
	assert.Equal(t, int64(3), resp.TotalCourses)
	assert.Equal(t, int64(9), resp.TotalTransactions)
	assert.Equal(t, int64(500000), resp.TotalCreditCents)
	assert.Equal(t, int64(254500), resp.TotalDebitCents)

	t.Run("per-course counts sum to total enrollments", func(t *testing.T) {
		var sum int64
		for _, c := range resp.Courses {
			sum += c.EnrollmentCount
		}
		assert.Equal(t, resp.TotalEnrollments, sum)
	})

	t.Run("courses without enrollments appear with zero", func(t *testing.T) {
		require.Len(t, resp.Courses, 3)
		assert.Equal(t, "ENG105", resp.Courses[1].Course.Code)
		assert.Equal(t, int64(0), resp.Courses[1].EnrollmentCount)
	})

	t.Run("course order follows the lister", func(t *testing.T) {
		codes := []string{}
		for _, c := range resp.Courses {
			codes = append(codes, c.Course.Code)
		}
		assert.Equal(t, []string{"CSC101", "ENG105", "MTH201"}, codes)
	})

	t.Run("grade labels and counts stay parallel", func(t *testing.T) {
		require.Len(t, resp.GradeLabels, len(resp.GradeCounts))
		assert.Equal(t, []string{"A", "B+", "C"}, resp.GradeLabels)
		assert.Equal(t, []int64{10, 7, 3}, resp.GradeCounts)
	})
}

func TestDashboardOverviewEmpty(t *testing.T) {
	svc := NewDashboardService(
		&fakeStudentCounter{},
		&fakeCourseLister{},
		&fakeEnrollmentAgg{perCourse: map[int64]int64{}},
		&fakeTransactionAgg{},
		&fakeGradeAgg{},
	)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.TotalStudents)
	assert.Zero(t, resp.TotalCourses)
	assert.Zero(t, resp.TotalEnrollments)
	assert.Zero(t, resp.TotalTransactions)
	assert.Zero(t, resp.TotalCreditCents)
	assert.Zero(t, resp.TotalDebitCents)
	assert.Empty(t, resp.Courses)
	assert.Empty(t, resp.GradeLabels)
	assert.Empty(t, resp.GradeCounts)
}
