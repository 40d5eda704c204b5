package models

import "time"

// Course represents immutable course reference data.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Code        string `json:"code" db:"code" example:"CSC101"`
	Name        string `json:"name" db:"name" example:"Introduction to Computing"`
	Description string `json:"description,omitempty" db:"description"` // rich text HTML

	// EnrollmentCount is populated by the dashboard aggregation only.
	EnrollmentCount int64 `json:"enrollmentCount,omitempty" db:"-"`
}

// Enrollment links a student to a course. (student, course) pairs are
// unique; the enrollment date is set once at creation.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	Course *Course `json:"course,omitempty"` // relation, no db tag
}

// Grade stores a letter grade for a student in a course. Multiple rows
// per (student, course) are allowed so retakes keep their history.
type Grade struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	CourseID  int64  `json:"courseId" db:"course_id"`
	Grade     string `json:"grade" db:"grade" example:"A"`

	Course *Course `json:"course,omitempty"` // relation, no db tag
}
