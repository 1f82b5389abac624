package bookmarks

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

// MemoryRepository keeps bookmarks in process memory with the same owner
// scoping as the PostgreSQL repository. byOwner holds each owner's ids in
// ascending order.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	items   map[int64]*models.Bookmark
	byOwner map[int64][]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:   make(map[int64]*models.Bookmark),
		byOwner: make(map[int64][]int64),
	}
}

func cloneBookmark(b *models.Bookmark) *models.Bookmark {
	c := *b
	if b.Description != nil {
		d := *b.Description
		c.Description = &d
	}
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()

	stored := cloneBookmark(b)
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.items[stored.ID] = stored
	r.byOwner[stored.UserID] = append(r.byOwner[stored.UserID], stored.ID)

	return cloneBookmark(stored), nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[userID]
	result := make([]*models.Bookmark, 0, len(ids))
	for _, id := range ids {
		result = append(result, cloneBookmark(r.items[id]))
	}

	return result, nil
}

func (r *MemoryRepository) owned(id, userID int64) (*models.Bookmark, bool) {
	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return nil, false
	}
	return b, true
}

func (r *MemoryRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.owned(id, userID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneBookmark(b), nil
}

func (r *MemoryRepository) UpdateOwned(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.owned(id, userID)
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Link != nil {
		b.Link = *upd.Link
	}
	if upd.Description != nil {
		d := *upd.Description
		b.Description = &d
	}
	b.UpdatedAt = time.Now().UTC()

	return cloneBookmark(b), nil
}

func (r *MemoryRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.owned(id, userID); !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)

	ids := slices.DeleteFunc(r.byOwner[userID], func(v int64) bool { return v == id })
	if len(ids) == 0 {
		delete(r.byOwner, userID)
	} else {
		r.byOwner[userID] = ids
	}
	return nil
}
