package models

import (
	"errors"
	"time"
)

// CommentInput is the body of a comment creation request.
type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

// Validate checks that the content is present.
func (c *CommentInput) Validate() error {
	return validate.Struct(c)
}

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// Detail joins the comment with its author and post. Either may be nil when
// the referenced record is gone.
func (c *Comment) Detail(author *Account, post *Post) *CommentDetail {
	return &CommentDetail{
		ID:        c.ID,
		Content:   c.Content,
		Author:    author.Ref(),
		Post:      post.Ref(),
		CreatedAt: c.CreatedAt,
	}
}
