// Package httpapi is the REST surface of the bookmarks server: the route
// table, the middleware chain and the handlers.
package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/logging"
	"github.com/dmitrijs2005/bookmarks/internal/server/auth"
	"github.com/dmitrijs2005/bookmarks/internal/server/limiter"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// UserService is implemented by services.UserService.
type UserService interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Edit(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// BookmarkService is implemented by services.BookmarkService.
type BookmarkService interface {
	List(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	Create(ctx context.Context, userID int64, b *models.Bookmark) (*models.Bookmark, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	Edit(ctx context.Context, id, userID int64, upd models.BookmarkUpdate) (*models.Bookmark, error)
	Delete(ctx context.Context, id, userID int64) error
}

// TokenVerifier is implemented by auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RateLimiter is implemented by limiter.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (limiter.Result, error)
}

// Pinger is a readiness dependency such as *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the collaborators of Handler. Limiter and Checks are optional.
// TrustProxy makes X-Forwarded-For and X-Real-IP decide the client address;
// enable it only behind a proxy that overwrites those headers.
type Deps struct {
	Users      UserService
	Bookmarks  BookmarkService
	Tokens     TokenVerifier
	Logger     logging.Logger
	Limiter    RateLimiter
	Checks     map[string]Pinger
	TrustProxy bool
}

type Handler struct {
	users        UserService
	bookmarks    BookmarkService
	tokens       TokenVerifier
	logger       logging.Logger
	limiter      RateLimiter
	checks       map[string]Pinger
	validate     *validator.Validate
	readyTimeout time.Duration
	trustProxy   bool
}

func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	return &Handler{
		users:        d.Users,
		bookmarks:    d.Bookmarks,
		tokens:       d.Tokens,
		logger:       logger.With("module", "httpapi"),
		limiter:      d.Limiter,
		checks:       d.Checks,
		validate:     newValidator(),
		readyTimeout: 2 * time.Second,
		trustProxy:   d.TrustProxy,
	}
}
