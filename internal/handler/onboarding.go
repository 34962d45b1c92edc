package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
	"github.com/optifit/web/internal/validation"
)

type OnboardingHandler struct {
	profiles *service.ProfileService
	sessions *service.SessionService
}

func NewOnboardingHandler(profiles *service.ProfileService, sessions *service.SessionService) *OnboardingHandler {
	return &OnboardingHandler{
		profiles: profiles,
		sessions: sessions,
	}
}

// OnboardingPage shows the stored profile read-only, or the form when
// there is none yet or the user asked to edit.
func (h *OnboardingHandler) OnboardingPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	profile, err := h.profiles.Current(r.Context(), sess)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	props := pages.OnboardingProps{
		Profile: profile,
		Exists:  profile != nil,
		Editing: r.URL.Query().Get("edit") == "1",
	}
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", sess.UserID)
		props.Error = "We could not load your saved profile. You can still fill in the form."
	}

	ui.Render(w, r, pages.Onboarding(props))
}

func (h *OnboardingHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	profile := profileFromForm(r)

	existing, err := h.profiles.Current(r.Context(), sess)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		slog.Warn("failed to check existing profile", "error", err, "user_id", sess.UserID)
	}

	_, err = h.profiles.Save(r.Context(), sess, profile)
	if sessionExpired(h.sessions, w, r, err) {
		return
	}
	if err != nil {
		msg := "Failed to save your profile. Please try again."
		if errors.Is(err, validation.ErrInvalid) {
			msg = userMessage(err, msg)
		} else {
			slog.Error("failed to save profile", "error", err, "user_id", sess.UserID)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		ui.Render(w, r, pages.Onboarding(pages.OnboardingProps{
			Profile: profile,
			Exists:  existing != nil,
			Editing: true,
			Error:   msg,
		}))
		return
	}

	slog.Info("profile saved", "user_id", sess.UserID, "new", existing == nil)
	if existing == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
}

func profileFromForm(r *http.Request) *model.Profile {
	field := func(name string) string {
		return strings.TrimSpace(r.FormValue(name))
	}
	return &model.Profile{
		Age:                model.ParseNumber(field("age")),
		Height:             model.ParseNumber(field("height")),
		Weight:             model.ParseNumber(field("weight")),
		Gender:             field("gender"),
		FitnessLevel:       field("fitnessLevel"),
		FitnessGoal:        field("fitnessGoal"),
		Injuries:           field("injuries"),
		WorkoutDaysPerWeek: model.ParseNumber(field("workoutDaysPerWeek")),
		SessionDuration:    model.ParseNumber(field("sessionDuration")),
		AvailableEquipment: field("availableEquipment"),
		DietaryPreference:  field("dietaryPreference"),
	}
}
