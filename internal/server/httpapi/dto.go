package httpapi

import (
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/server/models"
)

type authRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type editUserRequest struct {
	Email     *string `json:"email" validate:"omitnil,email"`
	FirstName *string `json:"firstName" validate:"omitnil,max=255"`
	LastName  *string `json:"lastName" validate:"omitnil,max=255"`
}

func (r editUserRequest) toUpdate() models.UserUpdate {
	return models.UserUpdate{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type createBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Link        string  `json:"link" validate:"required"`
	Description *string `json:"description"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Link        *string `json:"link" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

func (r editBookmarkRequest) toUpdate() models.BookmarkUpdate {
	return models.BookmarkUpdate{Title: r.Title, Link: r.Link, Description: r.Description}
}

type bookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBookmarkResponse(b *models.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}
