package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
	"github.com/dmitrijs2005/bookmarks/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarks/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

type fakeUsersRepo struct {
	createFn     func(ctx context.Context, u *models.User) (*models.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	updateFn     func(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return f.createFn(ctx, u)
}
func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeUsersRepo) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	return f.updateFn(ctx, id, upd)
}

type fakeBookmarksRepo struct {
	listFn   func(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	createFn func(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error)
	getFn    func(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	updateFn func(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (f *fakeBookmarksRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	return f.listFn(ctx, userID)
}
func (f *fakeBookmarksRepo) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	return f.createFn(ctx, b)
}
func (f *fakeBookmarksRepo) GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	return f.getFn(ctx, id, userID)
}
func (f *fakeBookmarksRepo) UpdateOwned(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	return f.updateFn(ctx, id, userID, upd)
}
func (f *fakeBookmarksRepo) DeleteOwned(ctx context.Context, id, userID int64) error {
	return f.deleteFn(ctx, id, userID)
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBookmarksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository         { return m.u }
func (m *fakeRepoManager) Bookmarks(db dbx.DBTX) bookmarks.Repository { return m.b }

// fakeHasher encodes passwords as "hashed:<pw>" and counts Verify calls.
type fakeHasher struct {
	verifyCalls int
	hashErr     error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(encoded, password string) (bool, error) {
	h.verifyCalls++
	if encoded == "corrupt" {
		return false, fmt.Errorf("bad hash")
	}
	return encoded == "hashed:"+password, nil
}

type fakeTokens struct{}

func (fakeTokens) Sign(userID int64, email string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}
