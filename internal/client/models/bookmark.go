package models

import (
	"fmt"
	"time"
)

type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// String renders a one-line listing entry.
func (b *Bookmark) String() string {
	return fmt.Sprintf("[%d] %s <%s>", b.ID, b.Title, b.Link)
}

type NewBookmark struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description,omitempty"`
}

type BookmarkUpdate struct {
	Title       *string `json:"title,omitempty"`
	Link        *string `json:"link,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u BookmarkUpdate) Empty() bool {
	return u.Title == nil && u.Link == nil && u.Description == nil
}
