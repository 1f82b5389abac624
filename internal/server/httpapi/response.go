package httpapi

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error *APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError renders err. Server-side failures are logged with the full
// cause; the client only sees the generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := asAPIError(err)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}

	writeJSON(w, apiErr.StatusCode, errorResponse{Error: apiErr})
}
