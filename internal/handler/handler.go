package handler

import (
	"net/http"
	"strings"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/view"
)

// requireActor returns the acting profile, or writes a not-found payload and
// returns nil for authenticated accounts that have no profile.
func requireActor(w http.ResponseWriter, r *http.Request) *model.Profile {
	actor := ctxkeys.Actor(r.Context())
	if actor == nil {
		view.NotFound(w, r, "profile")
		return nil
	}
	return actor
}

// returnURL picks the optional "next" form value over the fallback, and
// rejects absolute URLs so the redirect stays on-site.
func returnURL(r *http.Request, fallback string) string {
	next := r.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}
