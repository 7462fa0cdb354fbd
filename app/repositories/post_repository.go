package repositories

import (
	"errors"
	"fmt"

	"boardapp/app/apperrors"
	"boardapp/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	id, err := newID()
	if err != nil {
		return err
	}
	post.ID = id
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves every post in key order, which is creation order
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID. Comments on the post are left in place.
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		// Verify post exists
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// DeleteByAuthor deletes every post written by authorID and returns how many
// were removed.
func (r *BadgerPostRepository) DeleteByAuthor(authorID string) (int, error) {
	deleted := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				it.Close()
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if post.AuthorID == authorID {
				keys = append(keys, item.KeyCopy(nil))
			}
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
