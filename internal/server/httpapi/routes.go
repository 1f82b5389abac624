package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the full route table.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	if h.trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(h.logRequests)
	r.Use(metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsHandler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrMethodNotAllowed)
	})

	r.Get("/health", h.health)
	r.Get("/ready", h.ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Get("/users/me", h.withUser(h.getMe))
		r.Patch("/users", h.withUser(h.editUser))

		r.Route("/bookmark", func(r chi.Router) {
			r.Get("/", h.withUser(h.listBookmarks))
			r.Post("/", h.withUser(h.createBookmark))

			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.OwnedBookmark)
				r.Get("/", h.withBookmark(h.getBookmark))
				r.Patch("/", h.withBookmark(h.editBookmark))
				r.Delete("/", h.withBookmark(h.deleteBookmark))
			})
		})
	})

	return r
}
