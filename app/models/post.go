package models

import (
	"errors"
	"time"
)

// PostUpdate carries the fields a PUT may change. Empty values keep the
// current value, so a caller cannot clear a field through an update.
type PostUpdate struct {
	Title   string `json:"title" validate:"omitempty"`
	Content string `json:"content"`
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// Validate checks the optional update fields.
func (u *PostUpdate) Validate() error {
	return validate.Struct(u)
}

// Apply copies the non-empty fields of u onto the post and reports whether
// anything changed.
func (p *Post) Apply(u PostUpdate) bool {
	changed := false
	if u.Title != "" && u.Title != p.Title {
		p.Title = u.Title
		changed = true
	}
	if u.Content != "" && u.Content != p.Content {
		p.Content = u.Content
		changed = true
	}
	return changed
}

// Detail joins the post with its author.
func (p *Post) Detail(author *Account) *PostDetail {
	return &PostDetail{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    author.Ref(),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
}

// Ref returns the projection of the post attached to comments.
func (p *Post) Ref() *PostRef {
	if p == nil {
		return nil
	}
	return &PostRef{ID: p.ID, Title: p.Title}
}
