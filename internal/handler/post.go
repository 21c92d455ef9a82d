package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type PostHandler struct {
	postService   *service.PostService
	maxUploadSize int64
}

func NewPostHandler(postService *service.PostService, maxUploadSize int64) *PostHandler {
	return &PostHandler{
		postService:   postService,
		maxUploadSize: maxUploadSize,
	}
}

// Detail shows one post with photos, comments, like count and the viewer's
// like state.
func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	actor := ctxkeys.Actor(r.Context())

	page, err := h.postService.Detail(postID, actor)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			view.NotFound(w, r, "post")
			return
		}
		slog.Error("failed to load post", "error", err, "post_id", postID)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"post":       page.Post,
		"author":     page.Author,
		"photos":     page.Photos,
		"photo_urls": page.PhotoURLs,
		"comments":   page.Comments,
		"like_count": page.LikeCount,
		"has_liked":  page.HasLiked,
		"actor":      actor,
	})
}

// Create makes a new post by the actor with zero or more uploaded images.
// An invalid caption aborts the whole operation before any photo exists.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		view.Invalid(w, r, service.FieldErrors{"image_files": "could not parse upload"})
		return
	}

	caption := r.FormValue("caption")
	files := r.MultipartForm.File["image_files"]

	_, err = h.postService.Create(actor, caption, files)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			view.Invalid(w, r, fieldErrs)
			return
		}
		slog.Error("failed to create post", "error", err, "profile_id", actor.ID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, "/profiles/"+actor.ID)
}

// Update edits a post's caption. Only the author may edit.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	postID := r.PathValue("id")

	err := h.postService.UpdateCaption(actor, postID, r.FormValue("caption"))
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			view.Invalid(w, r, fieldErrs)
		case errors.Is(err, repository.ErrPostNotFound):
			view.NotFound(w, r, "post")
		case errors.Is(err, service.ErrNotOwner):
			view.Forbidden(w, r)
		default:
			slog.Error("failed to update post", "error", err, "post_id", postID)
			view.InternalError(w, r)
		}
		return
	}

	view.Redirect(w, r, "/posts/"+postID)
}

// Delete removes a post; its photos, comments and likes cascade away with
// it. Only the author may delete.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	postID := r.PathValue("id")

	ownerID, err := h.postService.Delete(actor, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			view.NotFound(w, r, "post")
		case errors.Is(err, service.ErrNotOwner):
			view.Forbidden(w, r)
		default:
			slog.Error("failed to delete post", "error", err, "post_id", postID)
			view.InternalError(w, r)
		}
		return
	}

	view.Redirect(w, r, "/profiles/"+ownerID)
}
