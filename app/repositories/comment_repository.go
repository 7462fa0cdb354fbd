package repositories

import (
	"fmt"

	"boardapp/app/apperrors"
	"boardapp/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	id, err := newID()
	if err != nil {
		return err
	}
	comment.ID = id
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}

	// Save comment with post ID in key for efficient listing
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(commentKey(comment.PostID, comment.ID), data)
	})
}

// ListByPost retrieves all comments for a post in creation order
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
