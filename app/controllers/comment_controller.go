package controllers

import (
	"net/http"

	"boardapp/app/apperrors"
	"boardapp/app/models"
	"boardapp/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListPostComments(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, "Failed to fetch comments", err, http.StatusInternalServerError)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles creating a new comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := subject(w, r)
	if !ok {
		return
	}

	var input models.CommentInput
	if err := decodeJSON(r, &input); err != nil {
		sendError(w, "Failed to create comment", err, http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.CreateComment(authorID, mux.Vars(r)["postId"], input)
	if err != nil {
		sendError(w, "Failed to create comment", err, statusFor(err, []errorStatus{
			{apperrors.ErrValidation, http.StatusBadRequest},
		}))
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}
