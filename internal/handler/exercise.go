package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
)

type ExerciseHandler struct {
	exercises *service.ExerciseService
	sessions  *service.SessionService
}

func NewExerciseHandler(exercises *service.ExerciseService, sessions *service.SessionService) *ExerciseHandler {
	return &ExerciseHandler{
		exercises: exercises,
		sessions:  sessions,
	}
}

func (h *ExerciseHandler) ExercisesPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	q := r.URL.Query()
	filter := model.ExerciseFilter{
		Search:      q.Get("search"),
		MuscleGroup: q.Get("muscleGroup"),
		Equipment:   q.Get("equipment"),
		Difficulty:  q.Get("difficulty"),
	}

	list, err := h.exercises.List(r.Context(), sess, filter)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	errMsg := ""
	if err != nil {
		slog.Error("failed to list exercises", "error", err, "user_id", sess.UserID)
		errMsg = "Could not load exercises. Please try again."
	}

	// If HTMX request, only render the results
	if r.Header.Get("HX-Request") == "true" {
		ui.Render(w, r, pages.ExerciseResults(list, errMsg))
		return
	}

	ui.Render(w, r, pages.Exercises(list, filter, errMsg))
}

func (h *ExerciseHandler) ExerciseDetailPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	id := r.PathValue("id")

	ex, err := h.exercises.Get(r.Context(), sess, id)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if errors.Is(err, service.ErrExerciseNotFound) {
		w.WriteHeader(http.StatusNotFound)
		ui.Render(w, r, pages.NotFound())
		return
	}
	if err != nil {
		slog.Error("failed to get exercise", "error", err, "user_id", sess.UserID, "exercise_id", id)
		http.Error(w, "Failed to load exercise", http.StatusBadGateway)
		return
	}

	ui.Render(w, r, pages.ExerciseDetail(ex))
}
