package models

import (
	"time"
)

// User defines the authentication identity based on the 'users' table.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alice"`
	Email     string    `json:"email" db:"email" example:"alice@campus.edu"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	IsStaff   bool      `json:"isStaff" db:"is_staff" example:"false"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// Profile holds the editable personal data of a user. One row per user,
// created alongside the user and lazily re-created if missing.
type Profile struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"userId" db:"user_id"`
	Phone      string  `json:"phone" db:"phone" example:"+15550100"`
	Address    string  `json:"address" db:"address" example:"12 Campus Rd"`
	Bio        string  `json:"bio" db:"bio"`
	PictureURL *string `json:"pictureUrl,omitempty" db:"picture_url"`

	User *User `json:"user,omitempty"` // relation, no db tag
}
