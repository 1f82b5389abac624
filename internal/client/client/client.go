package client

import (
	"context"

	"github.com/dmitrijs2005/bookmarks/internal/client/models"
)

// Client is the bookmarks API as seen by the CLI.
type Client interface {
	SetToken(token string)
	Ping(ctx context.Context) error
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	EditMe(ctx context.Context, upd models.UserUpdate) (*models.User, error)
	ListBookmarks(ctx context.Context) ([]*models.Bookmark, error)
	CreateBookmark(ctx context.Context, b models.NewBookmark) (*models.Bookmark, error)
	GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error)
	EditBookmark(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error
}
