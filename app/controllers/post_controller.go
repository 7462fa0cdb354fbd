package controllers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"boardapp/app/apperrors"
	"boardapp/app/models"
	"boardapp/app/services"
	"boardapp/app/storage"

	"github.com/gorilla/mux"
)

// DefaultMaxUploadSize bounds multipart bodies when no limit is configured.
const DefaultMaxUploadSize = 10 << 20

// PostController handles HTTP requests for board posts
type PostController struct {
	postService   *services.PostService
	images        storage.ImageStore
	maxUploadSize int64
}

// NewPostController creates a new PostController. images may be nil, in
// which case image uploads are rejected.
func NewPostController(postService *services.PostService, images storage.ImageStore, maxUploadSize int64) *PostController {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &PostController{
		postService:   postService,
		images:        images,
		maxUploadSize: maxUploadSize,
	}
}

var postErrorStatuses = []errorStatus{
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrForbidden, http.StatusForbidden},
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, "Failed to fetch posts", err, http.StatusInternalServerError)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Failed to fetch post", err, statusFor(err, postErrorStatuses))
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post from a JSON body or a multipart form
// carrying an optional "image" file.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := subject(w, r)
	if !ok {
		return
	}

	title, content, image, err := pc.readPostForm(w, r)
	if err != nil {
		sendError(w, "Failed to create post", err, statusFor(err, postErrorStatuses))
		return
	}

	post, err := pc.postService.CreatePost(authorID, title, content, image)
	if err != nil {
		if image != "" {
			if rmErr := pc.images.Remove(image); rmErr != nil {
				log.Printf("Failed to remove orphaned image %s: %v", image, rmErr)
			}
		}
		sendError(w, "Failed to create post", err, statusFor(err, postErrorStatuses))
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// readPostForm extracts title, content and the stored image reference.
func (pc *PostController) readPostForm(w http.ResponseWriter, r *http.Request) (string, string, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := decodeJSON(r, &body); err != nil {
			return "", "", "", err
		}
		return body.Title, body.Content, "", nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, pc.maxUploadSize)
	if err := r.ParseMultipartForm(pc.maxUploadSize); err != nil {
		return "", "", "", errors.Join(apperrors.ErrValidation, err)
	}
	title, content := r.FormValue("title"), r.FormValue("content")

	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return title, content, "", nil
	}
	if err != nil {
		return "", "", "", errors.Join(apperrors.ErrValidation, err)
	}
	defer file.Close()

	if pc.images == nil {
		return "", "", "", fmt.Errorf("%w: image uploads are disabled", apperrors.ErrValidation)
	}
	image, err := pc.images.Save(file)
	if err != nil {
		return "", "", "", err
	}
	return title, content, image, nil
}

// Edit handles a partial update of an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subject(w, r)
	if !ok {
		return
	}

	var update models.PostUpdate
	if err := decodeJSON(r, &update); err != nil {
		sendError(w, "Failed to update post", err, http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(mux.Vars(r)["id"], subjectID, update)
	if err != nil {
		sendError(w, "Failed to update post", err, statusFor(err, postErrorStatuses))
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subject(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.DeletePost(mux.Vars(r)["id"], subjectID)
	if err != nil {
		sendError(w, "Failed to delete post", err, statusFor(err, postErrorStatuses))
		return
	}

	if post.Image != "" && pc.images != nil {
		if err := pc.images.Remove(post.Image); err != nil {
			log.Printf("Failed to remove image %s of post %s: %v", post.Image, post.ID, err)
		}
	}

	sendJSON(w, http.StatusOK, messageResponse{Message: "Post deleted", ID: post.ID})
}
