package handler

import (
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	sessions  *service.SessionService
}

func NewDashboardHandler(dashboard *service.DashboardService, sessions *service.SessionService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		sessions:  sessions,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	d, err := h.dashboard.Load(r.Context(), sess)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load dashboard", "error", err, "user_id", sess.UserID)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Dashboard(sess.User().FirstName(), ctxkeys.Profile(r.Context()), d))
}
