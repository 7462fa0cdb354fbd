package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Account is a registered user. The password digest never leaves the store.
type Account struct {
	ID           string `json:"id" validate:"required"`
	Username     string `json:"username" validate:"required"`
	PasswordHash string `json:"-" validate:"required"`
}

// Post represents a board post as it is stored.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	AuthorID  string    `json:"author" validate:"required"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// Comment represents a comment on a post as it is stored.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	AuthorID  string    `json:"author" validate:"required"`
	PostID    string    `json:"post" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// AuthorRef is the public projection of an account attached to posts and comments.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PostRef is the projection of a post attached to comments.
type PostRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PostDetail is a post with its author resolved. Author is nil when the
// account no longer exists.
type PostDetail struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    *AuthorRef `json:"author"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CommentDetail is a comment with its author and post resolved.
type CommentDetail struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Author    *AuthorRef `json:"author"`
	Post      *PostRef   `json:"post"`
	CreatedAt time.Time  `json:"createdAt"`
}
