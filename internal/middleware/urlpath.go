package middleware

import (
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
)

// WithURLPath records the request path for navigation highlighting.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithURLPath(r.Context(), r.URL.Path)))
	})
}
