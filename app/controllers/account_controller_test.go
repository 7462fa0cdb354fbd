package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"boardapp/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountController(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("register", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/register", "", "application/json",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp messageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("register duplicate answers 500", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/register", "", "application/json",
			strings.NewReader(`{"username":"alice","password":"pw2"}`))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Registration failed", resp.Message)
		assert.Contains(t, resp.Error, "already exists")
	})

	t.Run("register missing password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/register", "", "application/json",
			strings.NewReader(`{"username":"bob"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register invalid json", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/register", "", "application/json", strings.NewReader(`{`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/login", "", "application/json",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		account, err := env.accounts.GetByUsername("alice")
		require.NoError(t, err)
		subject, err := env.tokens.Verify(resp["token"])
		require.NoError(t, err)
		assert.Equal(t, account.ID, subject)
	})

	t.Run("login failures answer 400", func(t *testing.T) {
		for _, body := range []string{
			`{"username":"nobody","password":"pw1"}`,
			`{"username":"alice","password":"wrong"}`,
			`{"username":"alice"}`,
		} {
			w := env.do(http.MethodPost, "/api/login", "", "application/json", strings.NewReader(body))
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}

func TestAccountControllerDelete(t *testing.T) {
	env := setupTestEnv(t)
	alice, token := env.account(t, "alice")
	bob, _ := env.account(t, "bob")

	require.NoError(t, env.posts.Create(&models.Post{Title: "a", Content: "c", AuthorID: alice.ID}))
	require.NoError(t, env.posts.Create(&models.Post{Title: "b", Content: "c", AuthorID: bob.ID}))

	t.Run("requires token", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users", "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deletes account and posts", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users", token, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		posts, err := env.posts.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, bob.ID, posts[0].AuthorID)
	})

	t.Run("second delete answers 404", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users", token, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
