package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

// PostgresRepository implements bookmark storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bookmarkColumns = `id, user_id, title, link, description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*models.Bookmark, error) {
	b := &models.Bookmark{}
	if err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`INSERT INTO bookmarks (user_id, title, link, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING ` + bookmarkColumns

	created, err := scanBookmark(r.db.QueryRowContext(ctx, query, b.UserID, b.Title, b.Link, b.Description))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

// ListByOwner returns the owner's bookmarks ordered by id. The result is
// never nil.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1 AND user_id = $2`

	b, err := scanBookmark(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

// UpdateOwned applies the non-nil fields of upd. The owner filter is part of
// the statement, so a concurrent ownership change cannot be bypassed.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	query :=
		`UPDATE bookmarks SET
		   title = COALESCE($3, title),
		   link = COALESCE($4, link),
		   description = COALESCE($5, description),
		   updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + bookmarkColumns

	b, err := scanBookmark(r.db.QueryRowContext(ctx, query, id, userID, upd.Title, upd.Link, upd.Description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}

	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
