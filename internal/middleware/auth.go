package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
)

// AuthMiddleware checks for a JWT cookie and, when valid, adds the user and
// the acting profile to the request context. An authenticated account with
// no profile (an administrative account) still gets its user attached; the
// actor stays nil and handlers that anticipate the gap degrade gracefully.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService, profileService *service.ProfileService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				// No cookie, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				// Invalid token, clear cookie and continue
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := userService.ByID(userID)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Security: never carry the password hash through the request
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)

			// The session stays authenticated even when the profile
			// lookup fails; the actor is just absent then.
			profile, err := profileService.ByUserID(userID)
			switch {
			case err == nil:
				ctx = ctxkeys.WithActor(ctx, profile)
			case !errors.Is(err, repository.ErrProfileNotFound):
				slog.Error("failed to load profile for session", "error", err, "user_id", userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries an authenticated user
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not authenticated
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			http.Redirect(w, r, "/feed", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
