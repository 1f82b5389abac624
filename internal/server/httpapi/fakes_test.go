package httpapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/server/auth"
	"github.com/dmitrijs2005/bookmarks/internal/server/limiter"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

var errBoom = errors.New("boom")

type fakeUsers struct {
	signUpFn  func(ctx context.Context, email, password string) (string, error)
	signInFn  func(ctx context.Context, email, password string) (string, error)
	getByIDFn func(ctx context.Context, id int64) (*models.User, error)
	editFn    func(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password string) (string, error) {
	return f.signUpFn(ctx, email, password)
}
func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (string, error) {
	return f.signInFn(ctx, email, password)
}
func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn == nil {
		return &models.User{ID: id, Email: fmt.Sprintf("user%d@example.com", id)}, nil
	}
	return f.getByIDFn(ctx, id)
}
func (f *fakeUsers) Edit(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	return f.editFn(ctx, id, upd)
}

type fakeBookmarks struct {
	listFn     func(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	createFn   func(ctx context.Context, userID int64, b *models.Bookmark) (*models.Bookmark, error)
	getOwnedFn func(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	editFn     func(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	deleteFn   func(ctx context.Context, id, userID int64) error
}

func (f *fakeBookmarks) List(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	return f.listFn(ctx, userID)
}
func (f *fakeBookmarks) Create(ctx context.Context, userID int64, b *models.Bookmark) (*models.Bookmark, error) {
	return f.createFn(ctx, userID, b)
}
func (f *fakeBookmarks) GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	return f.getOwnedFn(ctx, id, userID)
}
func (f *fakeBookmarks) Edit(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	return f.editFn(ctx, id, userID, upd)
}
func (f *fakeBookmarks) Delete(ctx context.Context, id, userID int64) error {
	return f.deleteFn(ctx, id, userID)
}

// fakeVerifier accepts "valid-<id>" and reports "expired" as an expired token.
type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (*auth.Claims, error) {
	if token == "expired" {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
	}
	var id int64
	if _, err := fmt.Sscanf(token, "valid-%d", &id); err != nil {
		return nil, common.ErrInvalidToken
	}
	c := &auth.Claims{}
	c.Subject = fmt.Sprint(id)
	return c, nil
}

type fakeLimiter struct {
	res   limiter.Result
	err   error
	calls int
	keys  []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (limiter.Result, error) {
	f.calls++
	f.keys = append(f.keys, key)
	return f.res, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

func strptr(s string) *string { return &s }

var fixedTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
