// Package users stores user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

// Repository persists users. Lookups of absent users return
// common.ErrorNotFound; writes that would duplicate an email return
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}
