package dto

import "github.com/campushq/studentportal/internal/app/models"

// CourseEnrollmentCount pairs a course with its enrollment cardinality.
// Courses without enrollments appear with a count of zero.
type CourseEnrollmentCount struct {
	Course          models.Course `json:"course"`
	EnrollmentCount int64         `json:"enrollmentCount"`
}

// DashboardResponse carries the staff dashboard aggregates.
type DashboardResponse struct {
	TotalStudents     int64 `json:"totalStudents"`
	TotalCourses      int64 `json:"totalCourses"`
	TotalEnrollments  int64 `json:"totalEnrollments"`
	TotalTransactions int64 `json:"totalTransactions"`

	Courses []CourseEnrollmentCount `json:"courses"`

	TotalCreditCents int64 `json:"totalCreditCents"`
	TotalDebitCents  int64 `json:"totalDebitCents"`

	// Grade distribution as parallel sequences, sorted by label.
	GradeLabels []string `json:"gradeLabels"`
	GradeCounts []int64  `json:"gradeCounts"`
}
