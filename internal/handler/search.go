package handler

import (
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search matches the query against post captions and profile fields,
// case-insensitively. An empty query shows the empty-query state. An
// authenticated account without a profile gets an error display state
// instead of a failure.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor := ctxkeys.Actor(r.Context())
	if actor == nil {
		view.Render(w, r, map[string]any{
			"error": "profile not found",
		})
		return
	}

	query := r.URL.Query().Get("query")

	results, err := h.searchService.Search(query)
	if err != nil {
		slog.Error("failed to search", "error", err, "query", query)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"actor":    actor,
		"query":    results.Query,
		"empty":    results.Empty,
		"posts":    results.Posts,
		"profiles": results.Profiles,
	})
}
