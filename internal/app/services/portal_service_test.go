package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
)

const testStudentID = int64(7)

func newTestPortalService() (*PortalService, *fakeProfiles) {
	csc := &models.Course{ID: 1, Code: "CSC101", Name: "Introduction to Computing"}
	mth := &models.Course{ID: 2, Code: "MTH201", Name: "Linear Algebra"}

	profiles := newFakeProfiles()
	svc := NewPortalService(
		newFakePages(),
		&fakeEnrollments{items: []models.Enrollment{
			{ID: 1, StudentID: testStudentID, CourseID: 1, Course: csc},
			{ID: 2, StudentID: testStudentID, CourseID: 2, Course: mth},
			{ID: 3, StudentID: 99, CourseID: 1, Course: csc},
		}},
		&fakeGrades{items: []models.Grade{
			{ID: 1, StudentID: testStudentID, CourseID: 1, Grade: "A", Course: csc},
			{ID: 2, StudentID: testStudentID, CourseID: 2, Grade: "B+", Course: mth},
		}},
		&fakeTransactions{items: []models.Transaction{
			{ID: 1, StudentID: testStudentID, AmountCents: 250000, Description: "Tuition fee", IsCredit: false},
			{ID: 2, StudentID: testStudentID, AmountCents: 250000, Description: "Tuition payment", IsCredit: true},
			{ID: 3, StudentID: testStudentID, AmountCents: 4500, Description: "Library fine", IsCredit: false},
		}},
		&fakeLibrary{items: []models.LibraryItem{
			{ID: 1, Title: "The Go Programming Language", Author: "Donovan"},
			{ID: 2, Title: "Linear Algebra Done Right", Author: "Axler"},
		}},
		&fakeEvents{items: []models.Event{
			{ID: 1, Title: "Welcome Week", Location: "Main Hall", Category: models.EventOther, Date: time.Now()},
			{ID: 2, Title: "Go Workshop", Location: "Lab 3", Category: models.EventWorkshop, Date: time.Now()},
		}},
		&fakeFAQs{items: []models.FAQ{
			{ID: 1, Question: "How do I reset my password?", Category: models.FAQTechnical},
			{ID: 2, Question: "When are tuition fees due?", Category: models.FAQFinance},
		}},
		profiles,
	)
	return svc, profiles
}

func TestGetPageUnknownKey(t *testing.T) {
	svc, _ := newTestPortalService()

	for _, key := range []models.PageKey{"payments", "", "Courses"} {
		_, err := svc.GetPage(context.Background(), testStudentID, key, dto.PageQuery{})
		assert.ErrorIs(t, err, apperrors.ErrPageNotFound, "key %q", key)
	}
}

func TestGetPagePopulatesExactlyOneListing(t *testing.T) {
	svc, _ := newTestPortalService()

	tests := []struct {
		key   models.PageKey
		check func(t *testing.T, resp *dto.PageResponse)
	}{
		{models.PageDashboard, func(t *testing.T, r *dto.PageResponse) {
			assert.Empty(t, r.Enrollments)
			assert.Empty(t, r.Grades)
			assert.Nil(t, r.Profile)
		}},
		{models.PageCourses, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.Enrollments, 2)
			assert.Empty(t, r.Grades)
		}},
		{models.PageGrades, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.Grades, 2)
		}},
		{models.PageFinance, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.Transactions, 3)
			assert.Equal(t, []string{"credit", "debit"}, r.Categories)
		}},
		{models.PageLibrary, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.LibraryItems, 2)
		}},
		{models.PageEvents, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.Events, 2)
			assert.Contains(t, r.Categories, "workshop")
		}},
		{models.PageHelp, func(t *testing.T, r *dto.PageResponse) {
			assert.Len(t, r.FAQs, 2)
			assert.Contains(t, r.Categories, "technical")
		}},
		{models.PageProfile, func(t *testing.T, r *dto.PageResponse) {
			require.NotNil(t, r.Profile)
			assert.Equal(t, testStudentID, r.Profile.UserID)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			resp, err := svc.GetPage(context.Background(), testStudentID, tt.key, dto.PageQuery{})
			require.NoError(t, err)
			require.NotNil(t, resp.Page)
			assert.Equal(t, tt.key, resp.Page.PageKey)
			assert.NotEmpty(t, resp.Content)
			tt.check(t, resp)
		})
	}
}

func TestGetPageScopesListingsToStudent(t *testing.T) {
	svc, _ := newTestPortalService()

	resp, err := svc.GetPage(context.Background(), 99, models.PageCourses, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Enrollments, 1)
	assert.Equal(t, int64(99), resp.Enrollments[0].StudentID)
}

func TestGetPageSearch(t *testing.T) {
	svc, _ := newTestPortalService()

	t.Run("courses by name, case-insensitive", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageCourses, dto.PageQuery{Search: "LINEAR"})
		require.NoError(t, err)
		require.Len(t, resp.Enrollments, 1)
		assert.Equal(t, "MTH201", resp.Enrollments[0].Course.Code)
		assert.Equal(t, "LINEAR", resp.SearchQuery)
	})

	t.Run("grades by letter", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageGrades, dto.PageQuery{Search: "b+"})
		require.NoError(t, err)
		require.Len(t, resp.Grades, 1)
		assert.Equal(t, "B+", resp.Grades[0].Grade)
	})

	t.Run("library with no match", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageLibrary, dto.PageQuery{Search: "chemistry"})
		require.NoError(t, err)
		assert.Empty(t, resp.LibraryItems)
	})
}

func TestGetPageFinanceTypeFilter(t *testing.T) {
	svc, _ := newTestPortalService()

	t.Run("debit", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageFinance, dto.PageQuery{Type: "debit"})
		require.NoError(t, err)
		require.Len(t, resp.Transactions, 2)
		for _, tx := range resp.Transactions {
			assert.False(t, tx.IsCredit)
		}
		assert.Equal(t, "debit", resp.TypeFilter)
	})

	t.Run("credit combined with search", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageFinance, dto.PageQuery{Type: "credit", Search: "tuition"})
		require.NoError(t, err)
		require.Len(t, resp.Transactions, 1)
		assert.Equal(t, "Tuition payment", resp.Transactions[0].Description)
	})

	t.Run("unknown type imposes no constraint", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageFinance, dto.PageQuery{Type: "refund"})
		require.NoError(t, err)
		assert.Len(t, resp.Transactions, 3)
		assert.Empty(t, resp.TypeFilter)
	})
}

func TestGetPageCategoryFilter(t *testing.T) {
	svc, _ := newTestPortalService()

	t.Run("events by category", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageEvents, dto.PageQuery{Category: "workshop"})
		require.NoError(t, err)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "Go Workshop", resp.Events[0].Title)
		assert.Equal(t, "workshop", resp.CategoryFilter)
	})

	t.Run("faqs by category", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageHelp, dto.PageQuery{Category: "finance"})
		require.NoError(t, err)
		require.Len(t, resp.FAQs, 1)
		assert.Equal(t, models.FAQFinance, resp.FAQs[0].Category)
	})

	t.Run("unknown category imposes no constraint", func(t *testing.T) {
		resp, err := svc.GetPage(context.Background(), testStudentID, models.PageEvents, dto.PageQuery{Category: "party"})
		require.NoError(t, err)
		assert.Len(t, resp.Events, 2)
		assert.Empty(t, resp.CategoryFilter)
	})
}

func TestGetPageProfileCreatesMissingRow(t *testing.T) {
	svc, profiles := newTestPortalService()

	_, err := svc.GetPage(context.Background(), testStudentID, models.PageProfile, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, profiles.created)

	// A second visit reuses the created row.
	_, err = svc.GetPage(context.Background(), testStudentID, models.PageProfile, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, profiles.created)
}

func TestHome(t *testing.T) {
	svc, _ := newTestPortalService()

	t.Run("missing home row is tolerated", func(t *testing.T) {
		resp, err := svc.Home(context.Background())
		require.NoError(t, err)
		assert.Nil(t, resp.HomePage)
		assert.Len(t, resp.Pages, len(models.PageKeys))
	})

	t.Run("navigation order follows page rows", func(t *testing.T) {
		resp, err := svc.Home(context.Background())
		require.NoError(t, err)
		for i, key := range models.PageKeys {
			assert.Equal(t, key, resp.Pages[i].PageKey)
		}
	})
}
