package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
)

type WorkoutSessionHandler struct {
	plans    *service.PlanService
	progress *service.ProgressService
	sessions *service.SessionService
}

func NewWorkoutSessionHandler(plans *service.PlanService, progress *service.ProgressService, sessions *service.SessionService) *WorkoutSessionHandler {
	return &WorkoutSessionHandler{
		plans:    plans,
		progress: progress,
		sessions: sessions,
	}
}

func (h *WorkoutSessionHandler) SessionPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, r.URL.Query().Get("day"), "", http.StatusOK)
}

func (h *WorkoutSessionHandler) render(w http.ResponseWriter, r *http.Request, day, errMsg string, status int) {
	sess := ctxkeys.Session(r.Context())

	view, err := h.plans.Active(r.Context(), sess, plan.KindWorkout)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load workout plan", "error", err, "user_id", sess.UserID)
	}

	w.WriteHeader(status)
	ui.Render(w, r, pages.WorkoutSession(view, day, errMsg))
}

// SaveSession logs the completed exercises of one plan day.
func (h *WorkoutSessionHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	label := r.FormValue("day")

	view, err := h.plans.Active(r.Context(), sess, plan.KindWorkout)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load workout plan", "error", err, "user_id", sess.UserID)
		h.render(w, r, label, "Could not load your workout plan. Please try again.", http.StatusBadGateway)
		return
	}

	day, ok := view.Plan.Day(label)
	if !ok {
		h.render(w, r, label, "That day is not part of your plan.", http.StatusUnprocessableEntity)
		return
	}

	n, err := h.progress.SaveSession(r.Context(), sess, day, sessionEntries(r, len(day.Entries)))
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if errors.Is(err, service.ErrNoExercises) {
		h.render(w, r, label, "No exercises found for this day.", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		slog.Error("failed to save workout session", "error", err, "user_id", sess.UserID)
		h.render(w, r, label, "Failed to save your session. Please try again.", http.StatusBadGateway)
		return
	}
	if n == 0 {
		h.render(w, r, label, "Mark at least one exercise as done.", http.StatusUnprocessableEntity)
		return
	}

	slog.Info("workout session saved", "user_id", sess.UserID, "day", day.Label, "completed", n)
	http.Redirect(w, r, "/progress", http.StatusSeeOther)
}

func sessionEntries(r *http.Request, n int) []service.SessionEntry {
	entries := make([]service.SessionEntry, n)
	for i := range entries {
		suffix := "_" + strconv.Itoa(i)
		entries[i] = service.SessionEntry{
			Completed: r.FormValue("completed"+suffix) == "true",
			Sets:      formInt(r, "sets"+suffix),
			Reps:      formInt(r, "reps"+suffix),
			Weight:    formFloat(r, "weight"+suffix),
			Notes:     r.FormValue("notes" + suffix),
		}
	}
	return entries
}

func formInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	if err != nil {
		return 0
	}
	return n
}

func formFloat(r *http.Request, name string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name)), 64)
	if err != nil {
		return 0
	}
	return f
}
