package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/toast"
	"github.com/optifit/web/internal/ui/pages"
	"github.com/optifit/web/internal/validation"
)

type ProgressHandler struct {
	progress *service.ProgressService
	export   *service.ExportService
	sessions *service.SessionService
}

func NewProgressHandler(progress *service.ProgressService, export *service.ExportService, sessions *service.SessionService) *ProgressHandler {
	return &ProgressHandler{
		progress: progress,
		export:   export,
		sessions: sessions,
	}
}

func (h *ProgressHandler) ProgressPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	page, err := h.progress.Load(r.Context(), sess)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to load progress", "error", err, "user_id", sess.UserID)
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Progress(page))
}

func (h *ProgressHandler) AddMetric(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	err := h.progress.AddMetric(r.Context(), sess, formFloat(r, "weight"), r.FormValue("notes"))
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		if !errors.Is(err, validation.ErrInvalid) {
			slog.Error("failed to add metric", "error", err, "user_id", sess.UserID)
		}
		toastOnly(w, r, errorToast(userMessage(err, "Failed to save your weight. Please try again.")))
		return
	}

	h.refresh(w, r, successToast("Weight logged."))
}

func (h *ProgressHandler) LogExercise(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	res, err := h.progress.LogExercise(r.Context(), sess, model.ExerciseLog{
		ExerciseName: r.FormValue("exerciseName"),
		Weight:       formFloat(r, "weight"),
		Reps:         formInt(r, "reps"),
		Sets:         formInt(r, "sets"),
		Date:         r.FormValue("date"),
		Notes:        r.FormValue("notes"),
	})
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		if !errors.Is(err, validation.ErrInvalid) {
			slog.Error("failed to log exercise", "error", err, "user_id", sess.UserID)
		}
		toastOnly(w, r, errorToast(userMessage(err, "Failed to log exercise. Please try again.")))
		return
	}

	t := successToast("Exercise logged.")
	if res != nil && res.IsNewPR && res.PR != nil {
		t = toast.Props{
			Title:       "New personal record!",
			Description: fmt.Sprintf("%s: %s kg", res.PR.ExerciseName, strconv.FormatFloat(res.PR.PR, 'f', -1, 64)),
			Variant:     toast.VariantSuccess,
		}
	}
	h.refresh(w, r, t)
}

// refresh re-renders the progress body with a toast.
func (h *ProgressHandler) refresh(w http.ResponseWriter, r *http.Request, t toast.Props) {
	sess := ctxkeys.Session(r.Context())

	page, err := h.progress.Load(r.Context(), sess)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to reload progress", "error", err, "user_id", sess.UserID)
		toastOnly(w, r, t)
		return
	}

	ui.Render(w, r, pages.ProgressBody(page))
	renderToast(w, r, t)
}

func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	name := r.URL.Query().Get("exercise")

	logs, err := h.progress.History(r.Context(), sess, name)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		if !errors.Is(err, validation.ErrInvalid) {
			slog.Error("failed to load exercise history", "error", err, "user_id", sess.UserID, "exercise", name)
		}
		toastOnly(w, r, errorToast(userMessage(err, "Could not load history. Please try again.")))
		return
	}

	leaders, err := h.progress.Leaderboard(r.Context(), sess, name)
	if err != nil {
		slog.Warn("failed to load leaderboard", "error", err, "user_id", sess.UserID, "exercise", name)
	}

	ui.Render(w, r, pages.ExerciseHistory(name, logs, leaders))
}

// Export sends the progress CSV, through a signed storage link when
// object storage is configured.
func (h *ProgressHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	if h.export.Uploads() {
		url, err := h.export.Upload(r.Context(), sess)
		if sessionExpired(h.sessions, w, r, err) {
			return
		}
		if err == nil {
			slog.Info("progress exported", "user_id", sess.UserID, "storage", true)
			http.Redirect(w, r, url, http.StatusSeeOther)
			return
		}
		slog.Error("failed to upload export, streaming instead", "error", err, "user_id", sess.UserID)
	}

	var buf bytes.Buffer
	err := h.export.WriteCSV(r.Context(), sess, &buf)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Error("failed to export progress", "error", err, "user_id", sess.UserID)
		http.Error(w, "Failed to export progress", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="progress.csv"`)
	_, err = buf.WriteTo(w)
	if err != nil {
		slog.Error("failed to write export", "error", err, "user_id", sess.UserID)
	}
}
