package models

// PortalPage is the configuration row behind each portal section. Besides
// the main content it carries one rich-text column per section; which one
// is displayed depends on the page key.
type PortalPage struct {
	ID          int64   `json:"id" db:"id"`
	PageKey     PageKey `json:"pageKey" db:"page_key" example:"courses"`
	Heading     string  `json:"heading" db:"heading"`
	MainContent string  `json:"mainContent,omitempty" db:"main_content"`

	CoursesContent string `json:"coursesContent,omitempty" db:"courses_content"`
	GradesContent  string `json:"gradesContent,omitempty" db:"grades_content"`
	FinanceContent string `json:"financeContent,omitempty" db:"finance_content"`
	LibraryContent string `json:"libraryContent,omitempty" db:"library_content"`
	EventsContent  string `json:"eventsContent,omitempty" db:"events_content"`
	HelpContent    string `json:"helpContent,omitempty" db:"help_content"`
	ProfileContent string `json:"profileContent,omitempty" db:"profile_content"`
}

// placeholderContent is shown when a page has no content configured yet.
const placeholderContent = "<p><em>Content coming soon...</em></p>"

// ActiveContent returns the content column matching the page key, falling
// back to the main content and then to a placeholder.
func (p *PortalPage) ActiveContent() string {
	var content string
	switch p.PageKey {
	case PageCourses:
		content = p.CoursesContent
	case PageGrades:
		content = p.GradesContent
	case PageFinance:
		content = p.FinanceContent
	case PageLibrary:
		content = p.LibraryContent
	case PageEvents:
		content = p.EventsContent
	case PageHelp:
		content = p.HelpContent
	case PageProfile:
		content = p.ProfileContent
	default:
		content = p.MainContent
	}

	if content == "" {
		content = p.MainContent
	}
	if content == "" {
		return placeholderContent
	}
	return content
}

// HomePage is the singleton-style landing page configuration.
type HomePage struct {
	ID                 int64   `json:"id" db:"id"`
	Title              string  `json:"title" db:"title"`
	Subtitle           string  `json:"subtitle,omitempty" db:"subtitle"`
	WelcomeMessage     string  `json:"welcomeMessage,omitempty" db:"welcome_message"` // rich text HTML
	BackgroundImageURL *string `json:"backgroundImageUrl,omitempty" db:"background_image_url"`
}
