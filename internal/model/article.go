package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a blog post. AuthorID is set at creation and never changes;
// only the author may update or delete the article.
type Article struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	AuthorID  uuid.UUID `json:"author" gorm:"type:char(36);not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
