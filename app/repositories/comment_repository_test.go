package repositories

import (
	"testing"

	"boardapp/app/apperrors"
	"boardapp/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	t.Run("create and list comments", func(t *testing.T) {
		for _, content := range []string{"one", "two", "three"} {
			comment := &models.Comment{Content: content, AuthorID: "a1", PostID: "p1"}
			require.NoError(t, repo.Create(comment))
			assert.NotEmpty(t, comment.ID)
			assert.False(t, comment.CreatedAt.IsZero())
		}
		require.NoError(t, repo.Create(&models.Comment{Content: "elsewhere", AuthorID: "a1", PostID: "p2"}))

		comments, err := repo.ListByPost("p1")
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "one", comments[0].Content)
		assert.Equal(t, "three", comments[2].Content)
	})

	t.Run("empty content", func(t *testing.T) {
		err := repo.Create(&models.Comment{AuthorID: "a1", PostID: "p1"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("post without comments", func(t *testing.T) {
		comments, err := repo.ListByPost("p3")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("comments survive post deletion", func(t *testing.T) {
		posts := NewBadgerPostRepository(db)
		post := &models.Post{Title: "T", Content: "C", AuthorID: "a1"}
		require.NoError(t, posts.Create(post))
		require.NoError(t, repo.Create(&models.Comment{Content: "orphan", AuthorID: "a2", PostID: post.ID}))

		require.NoError(t, posts.Delete(post.ID))

		comments, err := repo.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})
}
