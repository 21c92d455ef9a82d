package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/view"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles the two-in-one form: account credentials plus profile
// fields. On success the caller is logged in as the new account and sent to
// the new profile's page. If either half is invalid, neither is persisted.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	in := service.RegisterInput{
		Username:    r.FormValue("username"),
		Password:    r.FormValue("password"),
		DisplayName: r.FormValue("display_name"),
		BioText:     r.FormValue("bio_text"),
		ImageURL:    r.FormValue("profile_image_url"),
	}

	user, profile, err := h.authService.Register(in)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			view.Invalid(w, r, fieldErrs)
			return
		}
		slog.Error("failed to register", "error", err, "username", in.Username)
		view.InternalError(w, r)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		view.InternalError(w, r)
		return
	}
	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	view.Redirect(w, r, "/profiles/"+profile.ID)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, map[string]any{
		"page":       "login",
		"csrf_token": ctxkeys.CSRFToken(r.Context()),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			view.Invalid(w, r, service.FieldErrors{"credentials": "invalid username or password"})
			return
		}
		slog.Error("failed to log in", "error", err, "username", username)
		view.InternalError(w, r)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		view.InternalError(w, r)
		return
	}
	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	view.Redirect(w, r, "/feed")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	view.Redirect(w, r, "/auth/login")
}
