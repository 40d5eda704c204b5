package models

import "time"

// LibraryItem represents a shared library resource.
type LibraryItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author,omitempty" db:"author"`
	Description string    `json:"description,omitempty" db:"description"` // rich text HTML
	FileURL     *string   `json:"fileUrl,omitempty" db:"file_url"`
	AddedAt     time.Time `json:"addedAt" db:"added_at"`
}
