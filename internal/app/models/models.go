package models

// PageKey identifies a portal section. One portal_pages row exists per key.
type PageKey string

const (
	PageDashboard PageKey = "dashboard"
	PageCourses   PageKey = "courses"
	PageGrades    PageKey = "grades"
	PageProfile   PageKey = "profile"
	PageFinance   PageKey = "finance"
	PageLibrary   PageKey = "library"
	PageEvents    PageKey = "events"
	PageHelp      PageKey = "help"
)

// PageKeys lists all valid portal page keys in navigation order.
var PageKeys = []PageKey{
	PageDashboard,
	PageCourses,
	PageGrades,
	PageProfile,
	PageFinance,
	PageLibrary,
	PageEvents,
	PageHelp,
}

// Valid reports whether the key is one of the fixed enumeration values.
func (k PageKey) Valid() bool {
	for _, known := range PageKeys {
		if k == known {
			return true
		}
	}
	return false
}

// EventCategory classifies campus events.
type EventCategory string

const (
	EventSeminar  EventCategory = "seminar"
	EventWorkshop EventCategory = "workshop"
	EventSports   EventCategory = "sports"
	EventOther    EventCategory = "other"
)

// EventCategories lists all valid event categories.
var EventCategories = []EventCategory{EventSeminar, EventWorkshop, EventSports, EventOther}

// Valid reports whether the category is a known event category.
func (c EventCategory) Valid() bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FAQCategory classifies help entries.
type FAQCategory string

const (
	FAQAdmissions FAQCategory = "admissions"
	FAQFinance    FAQCategory = "finance"
	FAQCourses    FAQCategory = "courses"
	FAQTechnical  FAQCategory = "technical"
	FAQOther      FAQCategory = "other"
)

// FAQCategories lists all valid FAQ categories.
var FAQCategories = []FAQCategory{FAQAdmissions, FAQFinance, FAQCourses, FAQTechnical, FAQOther}

// Valid reports whether the category is a known FAQ category.
func (c FAQCategory) Valid() bool {
	for _, known := range FAQCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction type filter values accepted on the finance page.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)
