package models

import "time"

// Bookmark is a link saved by a user. UserID is the owner; every lookup is
// scoped to it.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Link        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookmarkUpdate is a partial edit; nil fields are left unchanged.
type BookmarkUpdate struct {
	Title       *string
	Link        *string
	Description *string
}

func (u BookmarkUpdate) Empty() bool {
	return u.Title == nil && u.Link == nil && u.Description == nil
}
