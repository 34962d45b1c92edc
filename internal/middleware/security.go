package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/optifit/web/internal/ctxkeys"
)

// SecurityHeaders sets the CSP and the usual hardening headers. Scripts
// must carry the request nonce. Presigned export links may point at the
// configured S3 endpoint.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := ctxkeys.Config(r.Context())

		connect := []string{"'self'"}
		if cfg != nil && cfg.S3Endpoint != "" {
			if u, err := url.Parse(cfg.S3Endpoint); err == nil && u.Host != "" {
				connect = append(connect, u.Scheme+"://"+u.Host)
			}
		}

		csp := []string{
			"default-src 'self'",
			fmt.Sprintf("script-src 'self' 'nonce-%s'", GetNonce(r.Context())),
			"style-src 'self' 'unsafe-inline'",
			"img-src 'self' data: https:",
			"connect-src " + strings.Join(connect, " "),
			"frame-ancestors 'none'",
			"base-uri 'self'",
			"form-action 'self'",
		}

		h := w.Header()
		h.Set("Content-Security-Policy", strings.Join(csp, "; "))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
