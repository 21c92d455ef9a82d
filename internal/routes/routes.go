package routes

import (
	"net/http"

	"github.com/minigram/minigram/internal/app"
	"github.com/minigram/minigram/internal/handler"
	"github.com/minigram/minigram/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	post := handler.NewPostHandler(app.PostService, app.Cfg.MaxUploadSize)
	feed := handler.NewFeedHandler(app.PostService)
	social := handler.NewSocialHandler(app.SocialService)
	comment := handler.NewCommentHandler(app.CommentService)
	search := handler.NewSearchHandler(app.SearchService)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /{$}", profile.Index)
	mux.HandleFunc("GET /profiles/{id}", profile.Detail)
	mux.HandleFunc("GET /profiles/{id}/followers", profile.Followers)
	mux.HandleFunc("GET /profiles/{id}/following", profile.Following)
	mux.HandleFunc("GET /posts/{id}", post.Detail)

	// Auth
	mux.HandleFunc("GET /auth/login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /auth/login", middleware.RequireGuest(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("POST /profiles", middleware.RequireGuest(auth.Register))

	// Profile
	mux.HandleFunc("POST /profiles/update", middleware.RequireAuth(profile.Update))

	// Posts
	mux.HandleFunc("POST /posts", middleware.RequireAuth(post.Create))
	mux.HandleFunc("POST /posts/{id}/update", middleware.RequireAuth(post.Update))
	mux.HandleFunc("POST /posts/{id}/delete", middleware.RequireAuth(post.Delete))

	// Feed + search
	mux.HandleFunc("GET /feed", middleware.RequireAuth(feed.Feed))
	mux.HandleFunc("GET /search", middleware.RequireAuth(search.Search))

	// Follow / like
	mux.HandleFunc("POST /profiles/{id}/follow", middleware.RequireAuth(social.Follow))
	mux.HandleFunc("POST /profiles/{id}/unfollow", middleware.RequireAuth(social.Unfollow))
	mux.HandleFunc("POST /posts/{id}/like", middleware.RequireAuth(social.Like))
	mux.HandleFunc("POST /posts/{id}/unlike", middleware.RequireAuth(social.Unlike))

	// Comments
	mux.HandleFunc("POST /posts/{id}/comments", middleware.RequireAuth(comment.Create))
	mux.HandleFunc("POST /comments/{id}/delete", middleware.RequireAuth(comment.Delete))

	// Global middleware (order matters: logging wraps everything, config
	// before csrf so the csrf cookie knows the environment, auth before
	// handlers so the actor is resolved)
	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService),
	)
}
