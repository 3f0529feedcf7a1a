package social

import (
	"time"

	"github.com/google/uuid"
)

const MaxBodyLength = 140

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index;not null" json:"author_id"`
	Body      string    `gorm:"size:140;not null" json:"body"`
	Language  string    `gorm:"size:16;not null" json:"language"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Post) TableName() string { return "posts" }
