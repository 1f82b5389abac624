package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/client/config"
	"github.com/dmitrijs2005/bookmarks/internal/client/models"
	"github.com/dmitrijs2005/bookmarks/internal/client/session"
)

var errBoom = errors.New("boom")

type fakeClient struct {
	token string

	pingErr error

	signUpEmail, signUpPassword string
	signInErr                   error
	signErr                     error

	me      *models.User
	meErr   error
	editUpd models.UserUpdate

	bookmarks []*models.Bookmark
	listErr   error
	created   models.NewBookmark
	gotID     int64
	bmUpd     models.BookmarkUpdate
	bmErr     error
	deleted   int64
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) SignUp(ctx context.Context, email, password string) (string, error) {
	f.signUpEmail, f.signUpPassword = email, password
	if f.signErr != nil {
		return "", f.signErr
	}
	return "signup-token", nil
}

func (f *fakeClient) SignIn(ctx context.Context, email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "signin-token", nil
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	return f.me, f.meErr
}

func (f *fakeClient) EditMe(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	f.editUpd = upd
	u := *f.me
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FirstName != nil {
		u.FirstName = upd.FirstName
	}
	return &u, nil
}

func (f *fakeClient) ListBookmarks(ctx context.Context) ([]*models.Bookmark, error) {
	return f.bookmarks, f.listErr
}

func (f *fakeClient) CreateBookmark(ctx context.Context, b models.NewBookmark) (*models.Bookmark, error) {
	f.created = b
	return &models.Bookmark{ID: 42, Title: b.Title, Link: b.Link, Description: b.Description}, f.bmErr
}

func (f *fakeClient) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	f.gotID = id
	if f.bmErr != nil {
		return nil, f.bmErr
	}
	return &models.Bookmark{ID: id, Title: "Go", Link: "https://go.dev"}, nil
}

func (f *fakeClient) EditBookmark(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	f.gotID, f.bmUpd = id, upd
	return &models.Bookmark{ID: id, Title: "edited", Link: "https://go.dev"}, f.bmErr
}

func (f *fakeClient) DeleteBookmark(ctx context.Context, id int64) error {
	f.deleted = id
	return f.bmErr
}

type fakeStore struct {
	saved   *session.Session
	saveErr error
	loadErr error
	cleared bool
	closed  bool
}

func (s *fakeStore) Save(ctx context.Context, sess session.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = &sess
	return nil
}

func (s *fakeStore) Load(ctx context.Context) (*session.Session, error) {
	return s.saved, s.loadErr
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.cleared = true
	s.saved = nil
	return nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.OnlineCheckInterval = time.Hour
	return c
}

// newTestApp returns an app reading the given input lines. loggedIn seeds a
// session for kim@gmail.com.
func newTestApp(t *testing.T, api *fakeClient, store *fakeStore, loggedIn bool, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	withPassword(t, "123")

	var out bytes.Buffer
	a := newApp(testConfig(), api, store, readerFromLines(lines...), &out)
	if loggedIn {
		a.setSession("kim@gmail.com", "tok")
	}
	return a, &out
}

func withPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func strptr(s string) *string { return &s }
