// Package mock provides in-memory repositories for service and controller tests.
package mock

import (
	"fmt"
	"sync"
	"time"

	"boardapp/app/apperrors"
	"boardapp/app/models"
	"boardapp/app/repositories"
)

type AccountRepository struct {
	accounts map[string]*models.Account
	nextID   int
	mutex    sync.RWMutex
}

type PostRepository struct {
	posts  map[string]*models.Post
	order  []string
	nextID int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments []*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*models.Account),
		nextID:   1,
	}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[string]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{nextID: 1}
}

// AccountRepository implementation
func (m *AccountRepository) Create(account *models.Account) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.accounts {
		if existing.Username == account.Username {
			return fmt.Errorf("%w: username %q already exists", apperrors.ErrConflict, account.Username)
		}
	}
	account.ID = fmt.Sprintf("account-%d", m.nextID)
	m.nextID++
	stored := *account
	m.accounts[account.ID] = &stored
	return nil
}

func (m *AccountRepository) GetByID(id string) (*models.Account, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	account, exists := m.accounts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *AccountRepository) GetByUsername(username string) (*models.Account, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, account := range m.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AccountRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.accounts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.accounts, id)
	return nil
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = fmt.Sprintf("post-%d", m.nextID)
	m.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	stored := *post
	m.posts[post.ID] = &stored
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, id := range m.order {
		if post, exists := m.posts[id]; exists {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) DeleteByAuthor(authorID string) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	deleted := 0
	for id, post := range m.posts {
		if post.AuthorID == authorID {
			delete(m.posts, id)
			deleted++
		}
	}
	return deleted, nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = fmt.Sprintf("comment-%d", m.nextID)
	m.nextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	stored := *comment
	m.comments = append(m.comments, &stored)
	return nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if comment.PostID == postID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

// Count returns how many comments are stored across all posts.
func (m *CommentRepository) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.comments)
}
