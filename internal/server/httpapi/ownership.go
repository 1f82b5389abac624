package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type bookmarkCtxKey struct{}

// OwnedBookmark loads the {id} bookmark of the authenticated user. It must be
// mounted after Authenticate. A bookmark of another user gets the same 404 as
// a missing one.
func (h *Handler) OwnedBookmark(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			h.writeError(w, r, common.ErrUnauthenticated)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			h.writeError(w, r, NewValidationErrors(map[string]string{"id": "must be a positive integer"}))
			return
		}

		b, err := h.bookmarks.GetOwned(r.Context(), id, user.ID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bookmarkCtxKey{}, b)))
	})
}

// BookmarkFromContext returns the bookmark attached by OwnedBookmark.
func BookmarkFromContext(ctx context.Context) (*models.Bookmark, bool) {
	b, ok := ctx.Value(bookmarkCtxKey{}).(*models.Bookmark)
	return b, ok && b != nil
}

type bookmarkHandlerFunc func(w http.ResponseWriter, r *http.Request, user *models.User, b *models.Bookmark)

func (h *Handler) withBookmark(fn bookmarkHandlerFunc) http.HandlerFunc {
	return h.withUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		b, ok := BookmarkFromContext(r.Context())
		if !ok {
			h.writeError(w, r, common.ErrorNotFound)
			return
		}
		fn(w, r, user, b)
	})
}
