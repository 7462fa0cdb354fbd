package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardapp/app/auth"
	"boardapp/app/middleware"
	"boardapp/app/models"
	"boardapp/app/repositories/mock"
	"boardapp/app/services"
	"boardapp/app/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router   *mux.Router
	tokens   *auth.TokenService
	accounts *mock.AccountRepository
	posts    *mock.PostRepository
	comments *mock.CommentRepository
	images   *storage.FileStore
}

func setupTestEnv(t *testing.T) *testEnv {
	accounts := mock.NewAccountRepository()
	posts := mock.NewPostRepository()
	comments := mock.NewCommentRepository()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	images, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	accountService := services.NewAccountService(accounts, posts, auth.NewBcryptHasher(bcrypt.MinCost), tokens)
	postService := services.NewPostService(posts, accounts)
	commentService := services.NewCommentService(comments, posts, accounts)

	ac := NewAccountController(accountService)
	pc := NewPostController(postService, images, 1<<20)
	cc := NewCommentController(commentService)

	// Register routes manually, mirroring the production route table
	router := mux.NewRouter()
	protected := middleware.RequireAuth(auth.NewGuard(tokens))
	router.HandleFunc("/api/register", ac.Register).Methods("POST")
	router.HandleFunc("/api/login", ac.Login).Methods("POST")
	router.Handle("/api/users", protected(http.HandlerFunc(ac.Delete))).Methods("DELETE")
	router.HandleFunc("/api/posts", pc.Index).Methods("GET")
	router.Handle("/api/posts", protected(http.HandlerFunc(pc.Create))).Methods("POST")
	router.HandleFunc("/api/posts/{id}", pc.Show).Methods("GET")
	router.Handle("/api/posts/{id}", protected(http.HandlerFunc(pc.Edit))).Methods("PUT")
	router.Handle("/api/posts/{id}", protected(http.HandlerFunc(pc.Delete))).Methods("DELETE")
	router.HandleFunc("/api/posts/{postId}/comments", cc.Index).Methods("GET")
	router.Handle("/api/posts/{postId}/comments", protected(http.HandlerFunc(cc.Create))).Methods("POST")

	return &testEnv{
		router:   router,
		tokens:   tokens,
		accounts: accounts,
		posts:    posts,
		comments: comments,
		images:   images,
	}
}

// account creates an account directly in the repository and returns it with
// a valid token.
func (e *testEnv) account(t *testing.T, username string) (*models.Account, string) {
	hash, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash("pw")
	require.NoError(t, err)
	account := &models.Account{Username: username, PasswordHash: hash}
	require.NoError(t, e.accounts.Create(account))
	token, err := e.tokens.Issue(account.ID)
	require.NoError(t, err)
	return account, token
}

func (e *testEnv) do(method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
