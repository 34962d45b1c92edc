package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/gate"
	"github.com/optifit/web/internal/model"
)

type ProfileResolver interface {
	Resolve(ctx context.Context, sess *model.Session) (gate.ProfileStatus, *model.Profile, error)
}

// RequireProfile guards views that need a completed profile. It acts on
// gate.Evaluate: loading renders the placeholder, authenticate and
// redirect navigate away, render passes the profile on in the context.
func RequireProfile(profiles ProfileResolver, sessions Sessions, loading http.Handler) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Without a session there is no profile to wait for.
			in := gate.Input{
				Session:       sessionState(r.Context()),
				ProfileStatus: gate.ProfileNotFound,
			}

			if in.Session == gate.SessionPresent {
				sess := ctxkeys.Session(r.Context())
				status, profile, err := profiles.Resolve(r.Context(), sess)
				if errors.Is(err, apiclient.ErrUnauthorized) {
					ExpireSession(sessions, w, r)
					return
				}
				if err != nil {
					slog.Warn("profile check failed", "error", err, "user_id", sess.UserID)
				}
				in.ProfileStatus = status
				in.Profile = profile
			}

			switch gate.Evaluate(in) {
			case gate.DecisionLoading:
				loading.ServeHTTP(w, r)
			case gate.DecisionAuthenticate:
				Redirect(w, r, "/login")
			case gate.DecisionRedirect:
				Redirect(w, r, "/onboarding")
			case gate.DecisionRender:
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithProfile(r.Context(), in.Profile)))
			}
		}
	}
}

func sessionState(ctx context.Context) gate.SessionState {
	switch {
	case !ctxkeys.SessionResolved(ctx):
		return gate.SessionUnresolved
	case ctxkeys.Session(ctx) == nil:
		return gate.SessionAbsent
	default:
		return gate.SessionPresent
	}
}
