package models

// FAQ represents a help entry shown on the help page.
type FAQ struct {
	ID       int64       `json:"id" db:"id"`
	Question string      `json:"question" db:"question"`
	Answer   string      `json:"answer" db:"answer"` // rich text HTML
	Category FAQCategory `json:"category" db:"category" example:"technical"`
}
