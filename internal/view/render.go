// Package view is the presentation boundary: handlers hand it view state
// and redirect targets, and it takes care of encoding. A template frontend
// would slot in here without touching the handlers.
package view

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/service"
)

// Render writes a view payload as JSON.
func Render(w http.ResponseWriter, r *http.Request, payload any) {
	RenderStatus(w, r, http.StatusOK, payload)
}

func RenderStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
	}
}

// Invalid re-displays the submitted form's field errors. Nothing was
// persisted when this is sent.
func Invalid(w http.ResponseWriter, r *http.Request, fieldErrs service.FieldErrors) {
	RenderStatus(w, r, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fieldErrs,
	})
}

func NotFound(w http.ResponseWriter, r *http.Request, resource string) {
	RenderStatus(w, r, http.StatusNotFound, map[string]any{
		"error": resource + " not found",
	})
}

func Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderStatus(w, r, http.StatusForbidden, map[string]any{
		"error": "you do not own this resource",
	})
}

func InternalError(w http.ResponseWriter, r *http.Request) {
	RenderStatus(w, r, http.StatusInternalServerError, map[string]any{
		"error": "internal server error",
	})
}

// Redirect sends the post-action redirect the route table defines.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
