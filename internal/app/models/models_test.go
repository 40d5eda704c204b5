package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageKeyValid(t *testing.T) {
	for _, key := range PageKeys {
		assert.True(t, key.Valid(), "expected %q to be valid", key)
	}
	assert.False(t, PageKey("payments").Valid())
	assert.False(t, PageKey("").Valid())
	assert.False(t, PageKey("Courses").Valid(), "keys are case-sensitive")
}

func TestActiveContent(t *testing.T) {
	page := &PortalPage{
		PageKey:        PageCourses,
		MainContent:    "<p>main</p>",
		CoursesContent: "<p>courses</p>",
		GradesContent:  "<p>grades</p>",
	}

	t.Run("key selects its own column", func(t *testing.T) {
		assert.Equal(t, "<p>courses</p>", page.ActiveContent())

		page.PageKey = PageGrades
		assert.Equal(t, "<p>grades</p>", page.ActiveContent())
	})

	t.Run("dashboard uses main content", func(t *testing.T) {
		page.PageKey = PageDashboard
		assert.Equal(t, "<p>main</p>", page.ActiveContent())
	})

	t.Run("empty section column falls back to main", func(t *testing.T) {
		page.PageKey = PageFinance
		assert.Equal(t, "<p>main</p>", page.ActiveContent())
	})

	t.Run("fully empty page yields placeholder", func(t *testing.T) {
		empty := &PortalPage{PageKey: PageLibrary}
		assert.Equal(t, placeholderContent, empty.ActiveContent())
	})
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, EventWorkshop.Valid())
	assert.False(t, EventCategory("party").Valid())
	assert.False(t, EventCategory("").Valid())

	assert.True(t, FAQFinance.Valid())
	assert.False(t, FAQCategory("gossip").Valid())
}

func TestTransactionTypeString(t *testing.T) {
	credit := &Transaction{IsCredit: true}
	debit := &Transaction{IsCredit: false}
	assert.Equal(t, TransactionTypeCredit, credit.TypeString())
	assert.Equal(t, TransactionTypeDebit, debit.TypeString())
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{125050, "1250.50"},
		{-4500, "-45.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}
