package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/card"
	"github.com/optifit/web/internal/ui/layouts"
)

const previewLength = 240

func Dashboard(name string, profile *model.Profile, d *service.Dashboard) templ.Component {
	greeting := "Welcome back"
	if name != "" {
		greeting += ", " + name
	}

	return layouts.Base("Dashboard", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		subtitle := ""
		if profile != nil && profile.FitnessGoal != "" {
			subtitle = "Goal: " + ui.Label(profile.FitnessGoal)
		}
		h.Component(ctx, header(greeting, subtitle))

		h.Raw(`<div class="mb-6 grid grid-cols-2 gap-4 md:grid-cols-4">`)
		h.Component(ctx, card.Stat("Current weight", formatFloat(d.Stats.CurrentWeight)))
		h.Component(ctx, card.Stat("Total workouts", formatInt(d.Stats.TotalWorkouts)))
		h.Component(ctx, card.Stat("This week", formatInt(d.Stats.WorkoutsThisWeek)))
		h.Component(ctx, card.Stat("Personal records", formatInt(d.Stats.TotalPRs)))
		h.Raw("</div>")

		h.Raw(`<div class="grid gap-6 md:grid-cols-2">`)
		h.Component(ctx, planPreview(plan.KindWorkout, d.Workout))
		h.Component(ctx, planPreview(plan.KindDiet, d.Diet))
		h.Raw("</div>")
		return h.Err()
	}))
}

func planPreview(kind plan.Kind, view *service.PlanView) templ.Component {
	return card.Card(card.Props{ID: "preview-" + string(kind), Title: planTitle(kind)}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)

		switch {
		case view == nil || view.Plan == nil:
			h.Raw(`<p class="text-sm text-slate-500">Could not load this plan right now.</p>`)
		case view.Plan.IsEmpty():
			h.Raw(`<p class="text-sm text-slate-500">No plan yet.</p>`)
		default:
			p := view.Plan
			if view.Stale {
				h.Raw(`<p class="mb-2 text-xs text-amber-700">Offline copy</p>`)
			}
			if p.HasSchedule() {
				h.Raw(`<p class="text-sm text-slate-700">`)
				h.Text(formatInt(len(p.WeeklySchedule)) + " days")
				if kind == plan.KindWorkout {
					h.Text(", " + formatInt(p.ExerciseCount()) + " exercises")
				}
				h.Raw(`</p><ul class="mt-2 flex flex-wrap gap-2">`)
				for _, day := range p.WeeklySchedule {
					h.Raw(`<li class="rounded bg-slate-100 px-2 py-1 text-xs">`)
					h.Text(day.Label)
					h.Raw("</li>")
				}
				h.Raw("</ul>")
			}
			if kind == plan.KindDiet && !p.Macros.Calories.IsZero() {
				h.Raw(`<p class="mt-2 text-sm text-slate-700">`)
				h.Text(p.Macros.Calories.String() + " kcal per day")
				h.Raw("</p>")
			}
			if preview := p.Preview(previewLength); preview != "" && !p.HasSchedule() {
				h.Raw(`<p class="whitespace-pre-wrap text-sm text-slate-600">`)
				h.Text(preview)
				h.Raw("</p>")
			}
		}

		h.Raw(`<div class="mt-4">`)
		h.Component(ctx, button.Button(button.Props{Label: "Open", Href: planPath(kind), Variant: button.VariantSecondary}))
		h.Raw("</div>")
		return h.Err()
	}))
}
