// Package seed creates the fixed portal rows the application needs at
// startup, plus an optional sample dataset for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/repositories"
	"github.com/campushq/studentportal/internal/pkg/auth"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// defaultHeadings maps each page key to its initial heading.
var defaultHeadings = map[models.PageKey]string{
	models.PageDashboard: "Dashboard",
	models.PageCourses:   "My Courses",
	models.PageGrades:    "My Grades",
	models.PageProfile:   "My Profile",
	models.PageFinance:   "Finance",
	models.PageLibrary:   "Library",
	models.PageEvents:    "Campus Events",
	models.PageHelp:      "Help & FAQ",
}

// CreateDefaultData ensures the eight portal pages, a home page row and
// an initial staff account exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	repos := repositories.NewRepositories(dbPool)

	for _, key := range models.PageKeys {
		page := &models.PortalPage{
			PageKey: key,
			Heading: defaultHeadings[key],
		}
		if err := repos.Pages.Upsert(ctx, page); err != nil {
			return fmt.Errorf("seeding page %q: %w", key, err)
		}
	}

	homeCount, err := repos.Pages.CountHomePages(ctx)
	if err != nil {
		return fmt.Errorf("checking home page: %w", err)
	}
	if homeCount == 0 {
		home := &models.HomePage{
			Title:          "Student Portal",
			Subtitle:       "Your campus, in one place",
			WelcomeMessage: "<p>Welcome to the student portal. Log in to see your courses, grades and more.</p>",
		}
		if err := repos.Pages.CreateHomePage(ctx, home); err != nil {
			return fmt.Errorf("seeding home page: %w", err)
		}
		logger.Info().Msg("Created default home page")
	}

	if err := createStaffUser(ctx, repos); err != nil {
		return err
	}

	logger.Info().Msg("Default data present")
	return nil
}

// createStaffUser creates the initial staff account when no user owns
// the reserved admin username yet.
func createStaffUser(ctx context.Context, repos *repositories.Repositories) error {
	const adminUsername = "admin"

	exists, err := repos.Users.UsernameExists(ctx, adminUsername)
	if err != nil {
		return fmt.Errorf("checking admin user: %w", err)
	}
	if exists {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123"
		logger.Warn().Msg("ADMIN_PASSWORD not set, using default admin password")
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &models.User{
		Username: adminUsername,
		Email:    "admin@campus.edu",
		Password: hashed,
		IsStaff:  true,
	}
	if _, err := repos.Users.CreateWithProfile(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("creating admin user: %w", err)
	}
	logger.Info().Msg("Created initial staff user")
	return nil
}

// LoadSampleData populates a small demonstration dataset. It is a no-op
// when courses already exist so re-running it cannot duplicate rows.
func LoadSampleData(ctx context.Context, dbPool *pgxpool.Pool) error {
	repos := repositories.NewRepositories(dbPool)

	count, err := repos.Courses.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking courses: %w", err)
	}
	if count > 0 {
		logger.Info().Msg("Sample data already loaded, skipping")
		return nil
	}

	courses := []models.Course{
		{Code: "CSC101", Name: "Introduction to Computing", Description: "<p>Fundamentals of computing and programming.</p>"},
		{Code: "MTH201", Name: "Linear Algebra", Description: "<p>Vectors, matrices and linear maps.</p>"},
		{Code: "ENG105", Name: "Academic Writing", Description: "<p>Structured writing for university work.</p>"},
	}
	courseIDs := make([]int64, 0, len(courses))
	for i := range courses {
		id, err := repos.Courses.Create(ctx, &courses[i])
		if err != nil {
			return fmt.Errorf("creating course %s: %w", courses[i].Code, err)
		}
		courseIDs = append(courseIDs, id)
	}

	student, err := sampleStudent(ctx, repos)
	if err != nil {
		return err
	}

	for _, courseID := range courseIDs {
		if _, err := repos.Enrollments.Create(ctx, &models.Enrollment{StudentID: student.ID, CourseID: courseID}); err != nil &&
			!errors.Is(err, repositories.ErrAlreadyEnrolled) {
			return fmt.Errorf("creating enrollment: %w", err)
		}
	}

	grades := []string{"A", "B+", "A-"}
	for i, courseID := range courseIDs {
		if _, err := repos.Grades.Create(ctx, &models.Grade{StudentID: student.ID, CourseID: courseID, Grade: grades[i]}); err != nil {
			return fmt.Errorf("creating grade: %w", err)
		}
	}

	transactions := []models.Transaction{
		{StudentID: student.ID, AmountCents: 250000, Description: "Tuition fee", IsCredit: false},
		{StudentID: student.ID, AmountCents: 250000, Description: "Tuition payment", IsCredit: true},
		{StudentID: student.ID, AmountCents: 4500, Description: "Library fine", IsCredit: false},
	}
	for i := range transactions {
		if _, err := repos.Transactions.Create(ctx, &transactions[i]); err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	items := []models.LibraryItem{
		{Title: "The Go Programming Language", Author: "Donovan & Kernighan", Description: "<p>Course reference text.</p>"},
		{Title: "Linear Algebra Done Right", Author: "Sheldon Axler", Description: "<p>Recommended reading for MTH201.</p>"},
	}
	for i := range items {
		if _, err := repos.Library.Create(ctx, &items[i]); err != nil {
			return fmt.Errorf("creating library item: %w", err)
		}
	}

	events := []models.Event{
		{Title: "Welcome Week", Date: time.Now().AddDate(0, 0, 7), Location: "Main Hall", Description: "<p>Orientation for new students.</p>", Category: models.EventOther},
		{Title: "Go Workshop", Date: time.Now().AddDate(0, 0, 14), Location: "Lab 3", Description: "<p>Hands-on introduction to Go.</p>", Category: models.EventWorkshop},
		{Title: "Intervarsity Football", Date: time.Now().AddDate(0, 1, 0), Location: "Stadium", Description: "<p>Home game against the rivals.</p>", Category: models.EventSports},
	}
	for i := range events {
		if _, err := repos.Events.Create(ctx, &events[i]); err != nil {
			return fmt.Errorf("creating event: %w", err)
		}
	}

	faqs := []models.FAQ{
		{Question: "How do I reset my password?", Answer: "<p>Contact the service desk with your student ID.</p>", Category: models.FAQTechnical},
		{Question: "When are tuition fees due?", Answer: "<p>Fees are due two weeks before each semester starts.</p>", Category: models.FAQFinance},
		{Question: "How do I enroll in a course?", Answer: "<p>Enrollment is handled by the registry during registration week.</p>", Category: models.FAQCourses},
	}
	for i := range faqs {
		if _, err := repos.FAQs.Create(ctx, &faqs[i]); err != nil {
			return fmt.Errorf("creating faq: %w", err)
		}
	}

	logger.Info().Msg("Sample data loaded")
	return nil
}

func sampleStudent(ctx context.Context, repos *repositories.Repositories) (*models.User, error) {
	const username = "jdoe"

	existing, err := repos.Users.GetByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("looking up sample student: %w", err)
	}

	hashed, err := auth.HashPassword("Student123")
	if err != nil {
		return nil, fmt.Errorf("hashing sample password: %w", err)
	}
	student := &models.User{
		Username: username,
		Email:    "jdoe@campus.edu",
		Password: hashed,
	}
	if _, err := repos.Users.CreateWithProfile(ctx, student); err != nil {
		return nil, fmt.Errorf("creating sample student: %w", err)
	}
	return student, nil
}
