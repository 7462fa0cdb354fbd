package services

import (
	"errors"
	"fmt"
	"time"

	"boardapp/app/apperrors"
	"boardapp/app/auth"
	"boardapp/app/models"
	"boardapp/app/repositories"
)

// PostService handles business logic for board posts
type PostService struct {
	postRepo    repositories.PostRepository
	accountRepo repositories.AccountRepository
	now         func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, accountRepo repositories.AccountRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// CreatePost stores a new post written by authorID. image is an optional
// reference returned by the image store.
func (s *PostService) CreatePost(authorID, title, content, image string) (*models.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, fmt.Errorf("%w: invalid post: %v", apperrors.ErrValidation, err)
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		Image:     image,
		CreatedAt: s.now(),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// ListPosts returns every post with its author resolved
func (s *PostService) ListPosts() ([]*models.PostDetail, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	authors := newAccountCache(s.accountRepo)
	details := make([]*models.PostDetail, 0, len(posts))
	for _, post := range posts {
		author, err := authors.get(post.AuthorID)
		if err != nil {
			return nil, err
		}
		details = append(details, post.Detail(author))
	}
	return details, nil
}

// GetPost retrieves a post by ID with its author resolved
func (s *PostService) GetPost(id string) (*models.PostDetail, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	author, err := newAccountCache(s.accountRepo).get(post.AuthorID)
	if err != nil {
		return nil, err
	}
	return post.Detail(author), nil
}

// UpdatePost applies the non-empty fields of update to the post. Only the
// author may update it.
func (s *PostService) UpdatePost(id, subject string, update models.PostUpdate) (*models.Post, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid post: %v", apperrors.ErrValidation, err)
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeMutation(subject, post.AuthorID); err != nil {
		return nil, err
	}

	if !post.Apply(update) {
		return post, nil
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost deletes a post. Only the author may delete it; its comments are
// left in place.
func (s *PostService) DeletePost(id, subject string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeMutation(subject, post.AuthorID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	return post, nil
}

// validatePost validates a post's fields
func validatePost(title, content string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// accountCache resolves author ids once per request. Missing accounts resolve
// to nil rather than failing the listing.
type accountCache struct {
	repo     repositories.AccountRepository
	accounts map[string]*models.Account
}

func newAccountCache(repo repositories.AccountRepository) *accountCache {
	return &accountCache{repo: repo, accounts: make(map[string]*models.Account)}
}

func (c *accountCache) get(id string) (*models.Account, error) {
	if account, ok := c.accounts[id]; ok {
		return account, nil
	}
	account, err := c.repo.GetByID(id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve author %s: %w", id, err)
	}
	c.accounts[id] = account
	return account, nil
}
