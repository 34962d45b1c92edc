package ctxkeys

import (
	"context"

	"github.com/optifit/web/internal/config"
	"github.com/optifit/web/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionKey         contextKey = "session"
	SessionResolvedKey contextKey = "session_resolved"
	ProfileKey         contextKey = "profile"
	URLPathKey         contextKey = "url_path"
	ConfigKey          contextKey = "config"
	CSRFTokenKey       contextKey = "csrf_token"
)

func Session(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(SessionKey).(*model.Session)
	return sess
}

func WithSession(ctx context.Context, sess *model.Session) context.Context {
	ctx = context.WithValue(ctx, SessionResolvedKey, true)
	return context.WithValue(ctx, SessionKey, sess)
}

// SessionResolved is false when the session lookup could not complete,
// as opposed to completing and finding no session.
func SessionResolved(ctx context.Context) bool {
	resolved, _ := ctx.Value(SessionResolvedKey).(bool)
	return resolved
}

// WithoutSession marks the lookup as completed with no session.
func WithoutSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, SessionResolvedKey, true)
}

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func Profile(ctx context.Context) *model.Profile {
	profile, _ := ctx.Value(ProfileKey).(*model.Profile)
	return profile
}

func WithProfile(ctx context.Context, profile *model.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, profile)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}
