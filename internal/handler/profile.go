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

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Index lists all profiles.
func (h *ProfileHandler) Index(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.All()
	if err != nil {
		slog.Error("failed to list profiles", "error", err)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"profiles": profiles,
	})
}

// Detail shows one profile with its posts, counts and the viewer's follow
// state. Works for guests and profile-less accounts; actor is just nil then.
func (h *ProfileHandler) Detail(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("id")
	actor := ctxkeys.Actor(r.Context())

	page, err := h.profileService.Detail(profileID, actor)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			view.NotFound(w, r, "profile")
			return
		}
		slog.Error("failed to load profile", "error", err, "profile_id", profileID)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"profile":         page.Profile,
		"posts":           page.Posts,
		"follower_count":  page.FollowerCount,
		"following_count": page.FollowingCount,
		"is_following":    page.IsFollowing,
		"actor":           actor,
	})
}

func (h *ProfileHandler) Followers(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("id")

	followers, err := h.profileService.Followers(profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			view.NotFound(w, r, "profile")
			return
		}
		slog.Error("failed to load followers", "error", err, "profile_id", profileID)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"followers": followers,
	})
}

func (h *ProfileHandler) Following(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("id")

	following, err := h.profileService.Following(profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			view.NotFound(w, r, "profile")
			return
		}
		slog.Error("failed to load following", "error", err, "profile_id", profileID)
		view.InternalError(w, r)
		return
	}

	view.Render(w, r, map[string]any{
		"following": following,
	})
}

// Update edits the actor's own profile. The target is resolved from the
// session, never from the request, so a crafted id cannot touch another
// profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := requireActor(w, r)
	if actor == nil {
		return
	}

	err := h.profileService.Update(actor,
		r.FormValue("display_name"),
		r.FormValue("bio_text"),
		r.FormValue("profile_image_url"),
	)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			view.Invalid(w, r, fieldErrs)
			return
		}
		slog.Error("failed to update profile", "error", err, "profile_id", actor.ID)
		view.InternalError(w, r)
		return
	}

	view.Redirect(w, r, "/profiles/"+actor.ID)
}
