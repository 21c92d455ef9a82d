package ctxkeys

import (
	"context"

	"github.com/minigram/minigram/internal/config"
	"github.com/minigram/minigram/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey      contextKey = "user"
	ActorKey     contextKey = "actor"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
)

func User(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey).(*model.User)
	return user
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// Actor returns the authenticated account's profile, or nil when the request
// is unauthenticated or the account has no profile (e.g. an administrative
// account). Handlers that tolerate the latter check for nil; the rest sit
// behind RequireAuth.
func Actor(ctx context.Context) *model.Profile {
	profile, _ := ctx.Value(ActorKey).(*model.Profile)
	return profile
}

func WithActor(ctx context.Context, profile *model.Profile) context.Context {
	return context.WithValue(ctx, ActorKey, profile)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}
