package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
)

type EducationHandler struct {
	education *service.EducationService
}

func NewEducationHandler(education *service.EducationService) *EducationHandler {
	return &EducationHandler{
		education: education,
	}
}

func (h *EducationHandler) EducationPage(w http.ResponseWriter, r *http.Request) {
	articles, err := h.education.Articles()
	if err != nil {
		slog.Error("failed to load articles", "error", err)
		http.Error(w, "Failed to load articles", http.StatusInternalServerError)
		return
	}

	var current *service.Article
	if slug := r.URL.Query().Get("article"); slug != "" {
		current, err = h.education.Article(slug)
		if errors.Is(err, service.ErrArticleNotFound) {
			w.WriteHeader(http.StatusNotFound)
			ui.Render(w, r, pages.NotFound())
			return
		}
		if err != nil {
			slog.Error("failed to load article", "error", err, "slug", slug)
			http.Error(w, "Failed to load article", http.StatusInternalServerError)
			return
		}
	} else if len(articles) > 0 {
		current = articles[0]
	}

	ui.Render(w, r, pages.Education(articles, current))
}
