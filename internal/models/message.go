package models

import (
	"time"
)

// Message is a short text posted by an author. The id is a UUID string
// assigned at creation and immutable afterwards; both timestamps are
// server-assigned, and created_at is never rewritten by updates.
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID  string    `gorm:"size:255" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessagePartial is a Message-shaped request body where every field is
// optional. An empty string counts as absent.
type MessagePartial struct {
	ID       string `json:"id"`
	AuthorID string `json:"author_id"`
	Content  string `json:"content"`
}
