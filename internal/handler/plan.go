package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/middleware"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/toast"
	"github.com/optifit/web/internal/ui/pages"
)

// PlanHandler serves one kind of plan: the workout or the diet page.
type PlanHandler struct {
	kind     plan.Kind
	plans    *service.PlanService
	sessions *service.SessionService
}

func NewPlanHandler(kind plan.Kind, plans *service.PlanService, sessions *service.SessionService) *PlanHandler {
	return &PlanHandler{
		kind:     kind,
		plans:    plans,
		sessions: sessions,
	}
}

func (h *PlanHandler) PlanPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	view, err := h.plans.Active(r.Context(), sess, h.kind)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if errors.Is(err, apiclient.ErrProfileNotFound) {
		middleware.Redirect(w, r, "/onboarding")
		return
	}
	if err != nil {
		slog.Error("failed to load plan", "error", err, "user_id", sess.UserID, "kind", h.kind)
	}

	ui.Render(w, r, pages.PlanPage(h.kind, view))
}

// Generate asks for a new plan and swaps it into the page.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	res, err := h.plans.Generate(r.Context(), sess, h.kind)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if errors.Is(err, apiclient.ErrProfileNotFound) {
		toastOnly(w, r, toast.Props{
			Title:       "Profile needed",
			Description: "Complete your profile before generating a plan.",
			Variant:     toast.VariantWarning,
			Link:        "/onboarding",
			LinkLabel:   "Complete profile",
		})
		return
	}
	if err != nil {
		slog.Error("failed to generate plan", "error", err, "user_id", sess.UserID, "kind", h.kind)
		toastOnly(w, r, errorToast(fmt.Sprintf("Failed to generate %s plan. Please try again.", h.kind)))
		return
	}

	slog.Info("plan generated", "user_id", sess.UserID, "kind", h.kind, "shape", res.View.Plan.Shape)
	ui.Render(w, r, pages.PlanContent(h.kind, res.View))
	renderToast(w, r, successToast(res.Message))
}
