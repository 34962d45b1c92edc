package handler

import (
	"net/http"

	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home())
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, pages.NotFound())
}

// LoadingPage is served while the access gate waits for the session or
// profile to resolve.
func (h *HomeHandler) LoadingPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if r.Header.Get("HX-Request") == "true" {
		ui.Render(w, r, pages.LoadingContent(r.URL.RequestURI()))
		return
	}
	ui.Render(w, r, pages.Loading(r.URL.RequestURI()))
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

const robots = `User-agent: *
Allow: /$
Allow: /login
Allow: /signup
Disallow: /
`

// Robots keeps crawlers on the public pages.
func (h *HomeHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(robots))
}
