package routes

import (
	"encoding/json"
	"net/http"

	"boardapp/app/auth"
	"boardapp/app/config"
	"boardapp/app/controllers"
	"boardapp/app/middleware"
	"boardapp/app/repositories"
	"boardapp/app/services"
	"boardapp/app/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers on top of db and
// returns the application's HTTP handler.
func SetupRoutes(db *badger.DB, cfg *config.Config) (http.Handler, error) {
	images, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	accountRepo := repositories.NewBadgerAccountRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	guard := auth.NewGuard(tokens)

	accountService := services.NewAccountService(accountRepo, postRepo, auth.NewBcryptHasher(cfg.BcryptCost), tokens)
	postService := services.NewPostService(postRepo, accountRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, accountRepo)

	accountController := controllers.NewAccountController(accountService)
	postController := controllers.NewPostController(postService, images, int64(cfg.MaxUploadSize))
	commentController := controllers.NewCommentController(commentService)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Uploaded images
	router.PathPrefix(storage.URLPrefix).Handler(
		http.StripPrefix(storage.URLPrefix, http.FileServer(http.Dir(images.Dir())))).Methods("GET")

	protected := middleware.RequireAuth(guard)

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Account endpoints
	api.HandleFunc("/register", accountController.Register).Methods("POST")
	api.HandleFunc("/login", accountController.Login).Methods("POST")
	api.Handle("/users", protected(http.HandlerFunc(accountController.Delete))).Methods("DELETE")

	// Posts endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9a-zA-Z-]+}", postController.Show).Methods("GET")
	posts.Handle("", protected(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/{id:[0-9a-zA-Z-]+}", protected(http.HandlerFunc(postController.Edit))).Methods("PUT")
	posts.Handle("/{id:[0-9a-zA-Z-]+}", protected(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Comments endpoints
	posts.HandleFunc("/{postId:[0-9a-zA-Z-]+}/comments", commentController.Index).Methods("GET")
	posts.Handle("/{postId:[0-9a-zA-Z-]+}/comments", protected(http.HandlerFunc(commentController.Create))).Methods("POST")

	// CORS wraps the router so preflight requests never reach route matching.
	return middleware.CORS(router), nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "Not found"})
}
