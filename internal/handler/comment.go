package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create posts a comment on a post. Empty text is rejected with a field
// error and nothing is persisted.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	postID := r.PathValue("id")

	comment, err := h.commentService.Create(actor, postID, r.FormValue("text"))
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			view.Invalid(w, r, fieldErrs)
		case errors.Is(err, repository.ErrPostNotFound):
			view.NotFound(w, r, "post")
		default:
			slog.Error("failed to create comment", "error", err, "post_id", postID, "profile_id", actor.ID)
			view.InternalError(w, r)
		}
		return
	}

	view.Redirect(w, r, "/posts/"+comment.PostID)
}

// Delete removes a comment. Allowed for the comment's author and the post's
// author.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	commentID := r.PathValue("id")

	postID, err := h.commentService.Delete(actor, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCommentNotFound):
			view.NotFound(w, r, "comment")
		case errors.Is(err, service.ErrNotOwner):
			view.Forbidden(w, r)
		default:
			slog.Error("failed to delete comment", "error", err, "comment_id", commentID)
			view.InternalError(w, r)
		}
		return
	}

	view.Redirect(w, r, "/posts/"+postID)
}
