package repositories

import (
	"testing"

	"boardapp/app/apperrors"
	"boardapp/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	repo := NewBadgerAccountRepository(setupTestDB(t))

	alice := &models.Account{Username: "alice", PasswordHash: "digest-a"}

	t.Run("create and get account", func(t *testing.T) {
		require.NoError(t, repo.Create(alice))
		assert.NotEmpty(t, alice.ID)

		byID, err := repo.GetByID(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
		assert.Equal(t, "digest-a", byID.PasswordHash)

		byName, err := repo.GetByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, byName.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := &models.Account{Username: "alice", PasswordHash: "digest-b"}
		err := repo.Create(dup)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Empty(t, dup.ID)

		stored, err := repo.GetByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, stored.ID)
		assert.Equal(t, "digest-a", stored.PasswordHash)
	})

	t.Run("missing fields", func(t *testing.T) {
		err := repo.Create(&models.Account{Username: "", PasswordHash: "d"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete frees username", func(t *testing.T) {
		require.NoError(t, repo.Delete(alice.ID))

		_, err := repo.GetByID(alice.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetByUsername("alice")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete(alice.ID), ErrNotFound)

		again := &models.Account{Username: "alice", PasswordHash: "digest-c"}
		require.NoError(t, repo.Create(again))
		assert.NotEqual(t, alice.ID, again.ID)
	})
}
