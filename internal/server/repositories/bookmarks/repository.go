// Package bookmarks stores bookmarks. Every operation takes the owner's user
// id and filters on it, so a bookmark of another user behaves exactly like a
// missing one.
package bookmarks

import (
	"context"

	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	UpdateOwned(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}
