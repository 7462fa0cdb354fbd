package repositories

import "boardapp/app/models"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id string) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	Delete(id string) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	DeleteByAuthor(authorID string) (int, error)
}

// CommentRepository defines the interface for comment data access.
// Comments are immutable once created.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID string) ([]*models.Comment, error)
}
