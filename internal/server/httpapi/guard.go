package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

type userCtxKey struct{}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive; anything else yields "".
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], common.BearerScheme) {
		return ""
	}
	return parts[1]
}

// Authenticate rejects requests without a valid bearer token. The token's
// subject is re-read from the user store, so tokens of deleted users stop
// working immediately. The resolved user is stored in the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := bearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if token == "" {
			authFailures.WithLabelValues("missing_token").Inc()
			h.writeError(w, r, common.ErrUnauthenticated)
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, common.ErrTokenExpired) {
				reason = "expired_token"
			}
			authFailures.WithLabelValues(reason).Inc()
			h.logger.Debug(ctx, "token rejected", "reason", reason, "request_id", RequestIDFromContext(ctx))
			h.writeError(w, r, common.ErrUnauthenticated)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			authFailures.WithLabelValues("invalid_token").Inc()
			h.writeError(w, r, common.ErrUnauthenticated)
			return
		}

		user, err := h.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				authFailures.WithLabelValues("unknown_user").Inc()
				h.writeError(w, r, common.ErrUnauthenticated)
				return
			}
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userCtxKey{}, user)))
	})
}

// UserFromContext returns the user attached by Authenticate.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*models.User)
	return user, ok && user != nil
}

type userHandlerFunc func(w http.ResponseWriter, r *http.Request, user *models.User)

// withUser adapts a handler that takes the authenticated user explicitly.
func (h *Handler) withUser(fn userHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			h.writeError(w, r, common.ErrUnauthenticated)
			return
		}
		fn(w, r, user)
	}
}
