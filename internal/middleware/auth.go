package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
)

// Sessions is the part of *service.SessionService the middleware needs.
type Sessions interface {
	Resolve(ctx context.Context, cookie string) (*model.Session, error)
	End(ctx context.Context, sess *model.Session) error
	ClearCookie(w http.ResponseWriter)
}

// SessionAuth resolves the session cookie. A request whose session store
// lookup failed is left unresolved, which views treat as "still loading"
// rather than "logged out".
func SessionAuth(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithoutSession(r.Context())))
				return
			}

			sess, err := sessions.Resolve(r.Context(), cookie.Value)
			if errors.Is(err, service.ErrInvalidSession) {
				sessions.ClearCookie(w)
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithoutSession(r.Context())))
				return
			}
			if err != nil {
				slog.Error("failed to resolve session", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithSession(r.Context(), sess)))
		})
	}
}

// RequireAuth sends visitors without a session to the login page.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ctxkeys.SessionResolved(r.Context()) {
			w.Header().Set("Retry-After", "2")
			http.Error(w, "Session service unavailable, please retry.", http.StatusServiceUnavailable)
			return
		}
		if ctxkeys.Session(r.Context()) == nil {
			Redirect(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireGuest keeps logged-in users away from the login and signup pages.
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) != nil {
			Redirect(w, r, "/dashboard")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// Redirect performs a full-page redirect, using HX-Redirect for HTMX
// requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// ExpireSession tears down a session the backend no longer accepts and
// sends the user to log in again.
func ExpireSession(sessions Sessions, w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	if sess != nil {
		err := sessions.End(r.Context(), sess)
		if err != nil {
			slog.Error("failed to end session", "error", err, "user_id", sess.UserID)
		}
	}
	sessions.ClearCookie(w)
	Redirect(w, r, "/login")
}
