package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// Follow creates a follow edge to the target profile. Following yourself or
// following twice changes nothing.
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	targetID := r.PathValue("id")

	target, err := h.socialService.Follow(actor, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			view.NotFound(w, r, "profile")
			return
		}
		slog.Error("failed to follow", "error", err, "profile_id", actor.ID, "target_id", targetID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, "/profiles/"+target.ID)
}

// Unfollow removes the follow edge; removing an absent edge is a no-op.
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	targetID := r.PathValue("id")

	target, err := h.socialService.Unfollow(actor, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			view.NotFound(w, r, "profile")
			return
		}
		slog.Error("failed to unfollow", "error", err, "profile_id", actor.ID, "target_id", targetID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, returnURL(r, "/profiles/"+target.ID))
}

// Like records a like on the post. Liking your own post or liking twice
// changes nothing.
func (h *SocialHandler) Like(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	postID := r.PathValue("id")

	post, err := h.socialService.Like(actor, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			view.NotFound(w, r, "post")
			return
		}
		slog.Error("failed to like", "error", err, "profile_id", actor.ID, "post_id", postID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, returnURL(r, "/posts/"+post.ID))
}

// Unlike removes the actor's like; removing an absent like is a no-op.
func (h *SocialHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	postID := r.PathValue("id")

	post, err := h.socialService.Unlike(actor, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			view.NotFound(w, r, "post")
			return
		}
		slog.Error("failed to unlike", "error", err, "profile_id", actor.ID, "post_id", postID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, returnURL(r, "/posts/"+post.ID))
}
