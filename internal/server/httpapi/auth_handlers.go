package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookmarks/internal/common"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.users.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		authEvents.WithLabelValues("signup", outcome(err)).Inc()
		h.writeError(w, r, err)
		return
	}

	authEvents.WithLabelValues("signup", "success").Inc()
	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.users.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		authEvents.WithLabelValues("signin", outcome(err)).Inc()
		if errors.Is(err, common.ErrInvalidCredentials) {
			h.logger.Info(r.Context(), "signin rejected", "request_id", RequestIDFromContext(r.Context()))
		}
		h.writeError(w, r, err)
		return
	}

	authEvents.WithLabelValues("signin", "success").Inc()
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

func outcome(err error) string {
	return asAPIError(err).Code
}
