// Package services contains server-side business logic. This file implements
// UserService: signup, signin and profile reads and edits.
package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookmarks/internal/common"
	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/dmitrijs2005/bookmarks/internal/server/models"
	"github.com/dmitrijs2005/bookmarks/internal/server/repositories/repomanager"
)

// PasswordHasher is implemented by cryptox.Argon2Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

// TokenIssuer is implemented by auth.TokenService.
type TokenIssuer interface {
	Sign(userID int64, email string) (string, error)
}

// UserService orchestrates password hashing, the user store and token
// issuance.
type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer

	// dummyHash is verified against when the email is unknown, so both
	// signin failures cost one hash computation.
	dummyHash string
}

// NewUserService constructs a UserService. db may be nil for backends that
// ignore it.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenIssuer) (*UserService, error) {
	dummy, err := hasher.Hash(hex.EncodeToString(common.GenerateRandByteArray(16)))
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		dummyHash:   dummy,
	}, nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}

// SignUp creates the user and returns an access token for it. A taken email
// yields common.ErrEmailTaken; any other store failure matches
// common.ErrStorage.
func (s *UserService) SignUp(ctx context.Context, email, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrEmailTaken
		}
		return "", storageError(err)
	}

	return s.tokens.Sign(user.ID, user.Email)
}

// SignIn checks the credentials and returns an access token. An unknown email
// and a wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(s.dummyHash, password)
			return "", common.ErrInvalidCredentials
		}
		return "", storageError(err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("verify password of user %d: %w", user.ID, err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.tokens.Sign(user.ID, user.Email)
}

// GetByID returns the user or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, storageError(err)
	}
	return user, nil
}

// Edit applies a partial profile update. Moving to an email that belongs to
// another account yields common.ErrEmailTaken.
func (s *UserService) Edit(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		return s.GetByID(ctx, id)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, common.ErrEmailTaken
		case errors.Is(err, common.ErrorNotFound):
			return nil, err
		default:
			return nil, storageError(err)
		}
	}
	return user, nil
}
