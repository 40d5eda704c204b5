package models

import "time"

// Event represents a campus event. Listings order by date ascending.
type Event struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Date        time.Time     `json:"date" db:"date"`
	Location    string        `json:"location" db:"location"`
	Description string        `json:"description,omitempty" db:"description"` // rich text HTML
	Category    EventCategory `json:"category" db:"category" example:"seminar"`
}
