// Package session persists the CLI login between runs in a local SQLite
// database.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/client/session/migrations"
	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	keyAccessToken = "access_token"
	keyEmail       = "email"
)

// Session is the saved login.
type Session struct {
	AccessToken string
	Email       string
}

// Store saves and loads the current Session.
type Store struct {
	db *sql.DB
}

// RunMigrations brings the session schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the session database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the stored session atomically.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, sess.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, keyEmail, sess.Email)
	})
}

// Load returns the saved session, or nil when nobody is logged in.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	repo := NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, keyAccessToken)
	if err != nil || !ok {
		return nil, err
	}
	email, _, err := repo.Get(ctx, keyEmail)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: token, Email: email}, nil
}

// Clear forgets the session.
func (s *Store) Clear(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Clear(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
