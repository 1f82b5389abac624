package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/client/client"
	"github.com/dmitrijs2005/bookmarks/internal/client/config"
	"github.com/dmitrijs2005/bookmarks/internal/client/session"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// SessionStore is implemented by session.Store.
type SessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	api    client.Client
	store  SessionStore
	reader *bufio.Reader
	out    io.Writer

	email string
	token string

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the session database and restores a saved login.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	store, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session storage: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := newApp(c, api, store, bufio.NewReader(os.Stdin), os.Stdout)
	if err := a.restoreSession(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func newApp(c *config.Config, api client.Client, store SessionStore, r *bufio.Reader, w io.Writer) *App {
	return &App{config: c, api: api, store: store, reader: r, out: &lockedWriter{w: w}}
}

// lockedWriter serializes writes from the REPL and the status watcher.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func (a *App) restoreSession(ctx context.Context) error {
	s, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading session: %w", err)
	}
	if s != nil {
		a.setSession(s.Email, s.AccessToken)
	}
	return nil
}

func (a *App) setSession(email, token string) {
	a.email, a.token = email, token
	a.api.SetToken(token)
}

func sessionOf(a *App) session.Session {
	return session.Session{AccessToken: a.token, Email: a.email}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := a.email
	if m := a.getMode(); m != "" {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// checkOnline pings the server once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// requireLogin returns ErrNotLoggedIn for anonymous sessions.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}
	return nil
}

// handleError prints err. A rejected token ends the saved session.
func (a *App) handleError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn():
		_ = a.Logout(ctx)
		fmt.Fprintln(a.out, "Session expired, please login again")
	case errors.Is(err, client.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please login or register first")
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.store.Close()

	fmt.Fprintln(a.out, "Welcome to the bookmarks CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
