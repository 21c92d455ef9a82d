package handler

import (
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type FeedHandler struct {
	postService *service.PostService
}

func NewFeedHandler(postService *service.PostService) *FeedHandler {
	return &FeedHandler{
		postService: postService,
	}
}

// Feed shows the actor's own posts plus posts of everyone they follow,
// newest first. Always includes the actor's own posts, even with nobody
// followed.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	items, err := h.postService.Feed(actor)
	if err != nil {
		slog.Error("failed to load feed", "error", err, "profile_id", actor.ID)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"actor": actor,
		"feed":  items,
	})
}
