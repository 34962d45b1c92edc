package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/card"
	"github.com/optifit/web/internal/ui/components/form"
	"github.com/optifit/web/internal/ui/layouts"
)

type OnboardingProps struct {
	Profile *model.Profile
	// Editing shows the form for a profile that already exists.
	Editing bool
	Exists  bool
	Error   string
}

func Onboarding(p OnboardingProps) templ.Component {
	subtitle := "Tell us about yourself so we can build your plans."
	if p.Exists {
		subtitle = "Your profile drives every generated plan."
	}

	var body templ.Component
	if p.Exists && !p.Editing {
		body = profileSummary(p.Profile)
	} else {
		body = OnboardingForm(p)
	}
	return layouts.Base("Profile", group(header("Your profile", subtitle), body))
}

func profileSummary(profile *model.Profile) templ.Component {
	return card.Card(card.Props{Title: "Profile"}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rows := [][2]string{
			{"Age", profile.Age.String()},
			{"Height (cm)", profile.Height.String()},
			{"Weight (kg)", profile.Weight.String()},
			{"Gender", ui.Label(profile.Gender)},
			{"Fitness level", ui.Label(profile.FitnessLevel)},
			{"Goal", ui.Label(profile.FitnessGoal)},
			{"Workout days per week", profile.WorkoutDaysPerWeek.String()},
			{"Session length (min)", profile.SessionDuration.String()},
			{"Equipment", ui.Label(profile.AvailableEquipment)},
			{"Diet", ui.Label(profile.DietaryPreference)},
			{"Injuries", profile.Injuries},
		}

		h := ui.NewHTML(w)
		h.Raw(`<dl class="grid gap-4 sm:grid-cols-2">`)
		for _, row := range rows {
			value := row[1]
			if value == "" {
				value = "-"
			}
			h.Raw(`<div><dt class="text-xs uppercase tracking-wide text-slate-500">`)
			h.Text(row[0])
			h.Raw(`</dt><dd class="mt-1 text-slate-900">`)
			h.Text(value)
			h.Raw("</dd></div>")
		}
		h.Raw(`</dl><div class="mt-6">`)
		h.Component(ctx, button.Button(button.Props{Label: "Edit", Href: "/onboarding?edit=1", Variant: button.VariantSecondary}))
		h.Raw("</div>")
		return h.Err()
	}))
}

// OnboardingForm is the three-step profile form.
func OnboardingForm(p OnboardingProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		profile := p.Profile
		if profile == nil {
			profile = model.DefaultProfile()
		}

		h := ui.NewHTML(w)
		h.Raw(`<form id="onboarding-form" method="post" action="/onboarding" class="space-y-6">`)
		h.Component(ctx, form.CSRF())
		h.Component(ctx, form.Error(p.Error))

		h.Component(ctx, step(1, "Body stats", group(
			form.Input(form.InputProps{Label: "Age", Name: "age", Type: "number", Value: profile.Age.String(), Attrs: map[string]string{"min": "10", "max": "120"}}),
			form.Input(form.InputProps{Label: "Height (cm)", Name: "height", Type: "number", Value: profile.Height.String(), Attrs: map[string]string{"min": "50", "max": "272", "step": "any"}}),
			form.Input(form.InputProps{Label: "Weight (kg)", Name: "weight", Type: "number", Value: profile.Weight.String(), Attrs: map[string]string{"min": "20", "max": "500", "step": "any"}}),
			form.Select(form.SelectProps{Label: "Gender", Name: "gender", Options: form.Options(model.GenderMale, model.GenderFemale, model.GenderOther), Selected: profile.Gender}),
		)))

		h.Component(ctx, step(2, "Goals", group(
			form.Select(form.SelectProps{Label: "Fitness level", Name: "fitnessLevel", Options: form.Options(model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced), Selected: profile.FitnessLevel}),
			form.Select(form.SelectProps{Label: "Goal", Name: "fitnessGoal", Options: form.Options(model.GoalWeightLoss, model.GoalMuscleGain, model.GoalMaintain, model.GoalEndurance), Selected: profile.FitnessGoal}),
			form.Textarea(form.TextareaProps{Label: "Injuries or limitations", Name: "injuries", Value: profile.Injuries, Placeholder: "Optional"}),
		)))

		h.Component(ctx, step(3, "Preferences", group(
			form.Input(form.InputProps{Label: "Workout days per week", Name: "workoutDaysPerWeek", Type: "number", Value: profile.WorkoutDaysPerWeek.String(), Attrs: map[string]string{"min": "1", "max": "7"}}),
			form.Input(form.InputProps{Label: "Session length (min)", Name: "sessionDuration", Type: "number", Value: profile.SessionDuration.String(), Attrs: map[string]string{"min": "10", "max": "300"}}),
			form.Select(form.SelectProps{Label: "Equipment", Name: "availableEquipment", Options: form.Options(model.EquipmentGym, model.EquipmentHome, model.EquipmentBodyweight), Selected: profile.AvailableEquipment}),
			form.Select(form.SelectProps{Label: "Diet", Name: "dietaryPreference", Options: form.Options(model.DietNonVegetarian, model.DietVegetarian, model.DietVegan), Selected: profile.DietaryPreference}),
		)))

		h.Raw(`<div class="flex gap-3">`)
		h.Component(ctx, button.Button(button.Props{Label: "Save profile"}))
		if p.Exists {
			h.Component(ctx, button.Button(button.Props{Label: "Cancel", Href: "/onboarding", Variant: button.VariantGhost}))
		}
		h.Raw("</div></form>")
		return h.Err()
	})
}

func step(n int, title string, fields templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<fieldset class="rounded-xl border border-slate-200 bg-white p-6"><legend class="px-2 text-sm font-semibold text-slate-700">Step `)
		h.Text(formatInt(n))
		h.Raw(" of 3: ")
		h.Text(title)
		h.Raw(`</legend><div class="grid gap-4 sm:grid-cols-2">`)
		h.Component(ctx, fields)
		h.Raw("</div></fieldset>")
		return h.Err()
	})
}
