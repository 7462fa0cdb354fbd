package services

import (
	"errors"
	"fmt"
	"time"

	"boardapp/app/apperrors"
	"boardapp/app/models"
	"boardapp/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	accountRepo repositories.AccountRepository
	now         func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository,
	accountRepo repositories.AccountRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// CreateComment stores a comment by authorID on postID. The post is not
// required to exist.
func (s *CommentService) CreateComment(authorID, postID string, input models.CommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid comment: %v", apperrors.ErrValidation, err)
	}

	comment := &models.Comment{
		Content:   input.Content,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post with author and post
// title resolved
func (s *CommentService) ListPostComments(postID string) ([]*models.CommentDetail, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve post %s: %w", postID, err)
	}

	authors := newAccountCache(s.accountRepo)
	details := make([]*models.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		author, err := authors.get(comment.AuthorID)
		if err != nil {
			return nil, err
		}
		details = append(details, comment.Detail(author, post))
	}
	return details, nil
}
