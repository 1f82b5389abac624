package httpapi

import (
	"context"
	"net/http"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// ready pings every configured dependency.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	failed := map[string]string{}
	for name, p := range h.checks {
		if err := p.PingContext(ctx); err != nil {
			h.logger.Warn(ctx, "readiness check failed", "dependency", name, "error", err)
			failed[name] = "unavailable"
		}
	}

	if len(failed) > 0 {
		e := *ErrServiceUnavailable
		e.Details = failed
		writeJSON(w, e.StatusCode, errorResponse{Error: &e})
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}
