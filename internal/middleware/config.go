package middleware

import (
	"net/http"

	"github.com/optifit/web/internal/config"
	"github.com/optifit/web/internal/ctxkeys"
)

// Config exposes the secret-free configuration to views.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	sanitized := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxkeys.WithConfig(r.Context(), sanitized)))
		})
	}
}
