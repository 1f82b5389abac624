package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
	"github.com/dmitrijs2005/bookmarks/internal/server/repositories/repomanager"
)

// BookmarkService exposes owner-scoped bookmark operations. A bookmark owned
// by someone else is reported as common.ErrorNotFound.
type BookmarkService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db dbx.DBTX, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

func notFoundOrStorage(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return storageError(err)
}

func (s *BookmarkService) List(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	items, err := s.repomanager.Bookmarks(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}
	if items == nil {
		items = []*models.Bookmark{}
	}
	return items, nil
}

// Create stores b under userID; any UserID already set on b is overwritten.
func (s *BookmarkService) Create(ctx context.Context, userID int64, b *models.Bookmark) (*models.Bookmark, error) {
	b.UserID = userID
	created, err := s.repomanager.Bookmarks(s.db).Create(ctx, b)
	if err != nil {
		return nil, storageError(err)
	}
	return created, nil
}

func (s *BookmarkService) GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	b, err := s.repomanager.Bookmarks(s.db).GetOwned(ctx, id, userID)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	return b, nil
}

// Edit changes only the supplied fields.
func (s *BookmarkService) Edit(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	if upd.Empty() {
		return s.GetOwned(ctx, id, userID)
	}

	b, err := s.repomanager.Bookmarks(s.db).UpdateOwned(ctx, id, userID, upd)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	return b, nil
}

func (s *BookmarkService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repomanager.Bookmarks(s.db).DeleteOwned(ctx, id, userID); err != nil {
		return notFoundOrStorage(err)
	}
	return nil
}
