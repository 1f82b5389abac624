package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request, user *models.User) {
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req editUserRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.users.Edit(r.Context(), user.ID, req.toUpdate())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}
