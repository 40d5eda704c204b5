package dto

import "github.com/campushq/studentportal/internal/app/models"

// PageQuery carries the filter parameters accepted by portal pages.
// Absent parameters impose no constraint.
type PageQuery struct {
	Search   string `form:"search"`
	Type     string `form:"type"`     // finance only: credit|debit
	Category string `form:"category"` // events and help only
}

// PageResponse is the rendering context for a portal page. Page and
// Content are always present; exactly one entity slice is populated
// depending on the page key.
type PageResponse struct {
	Page    *models.PortalPage `json:"page"`
	Content string             `json:"content"` // the key-selected rich text

	Enrollments  []models.Enrollment  `json:"enrollments,omitempty"`
	Grades       []models.Grade       `json:"grades,omitempty"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	LibraryItems []models.LibraryItem `json:"libraryItems,omitempty"`
	Events       []models.Event       `json:"events,omitempty"`
	FAQs         []models.FAQ         `json:"faqs,omitempty"`
	Profile      *models.Profile      `json:"profile,omitempty"`

	SearchQuery    string   `json:"searchQuery,omitempty"`
	TypeFilter     string   `json:"typeFilter,omitempty"`
	CategoryFilter string   `json:"categoryFilter,omitempty"`
	Categories     []string `json:"categories,omitempty"` // valid filter values for the page
}

// PageListItem is a navigation entry for a portal section.
type PageListItem struct {
	PageKey models.PageKey `json:"pageKey"`
	Heading string         `json:"heading"`
}

// HomeResponse is the public landing page context.
type HomeResponse struct {
	HomePage *models.HomePage `json:"homePage,omitempty"`
	Pages    []PageListItem   `json:"pages"`
}
