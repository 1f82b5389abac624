package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request, user *models.User) {
	items, err := h.bookmarks.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := make([]bookmarkResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBookmarkResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req createBookmarkRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	b, err := h.bookmarks.Create(r.Context(), user.ID, &models.Bookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request, user *models.User, b *models.Bookmark) {
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

func (h *Handler) editBookmark(w http.ResponseWriter, r *http.Request, user *models.User, b *models.Bookmark) {
	var req editBookmarkRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.bookmarks.Edit(r.Context(), b.ID, user.ID, req.toUpdate())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(updated))
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request, user *models.User, b *models.Bookmark) {
	if err := h.bookmarks.Delete(r.Context(), b.ID, user.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
