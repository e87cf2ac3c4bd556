package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProfilePicture is assigned to every user at registration until they
// upload their own.
const DefaultProfilePicture = "default"

// User represents a registered author. PasswordHash and SessionToken are never
// serialized; SessionToken is the server-side session marker that must match
// the client's session cookie for a bearer token to be accepted.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"`
	ProfilePicture string    `json:"profile_picture" gorm:"size:255;not null"`
	SessionToken   string    `json:"-" gorm:"size:64;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
