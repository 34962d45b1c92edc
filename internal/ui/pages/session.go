package pages

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/form"
	"github.com/optifit/web/internal/ui/layouts"
)

// WorkoutSession lets the user tick off the exercises of one plan day.
func WorkoutSession(view *service.PlanView, selected, errMsg string) templ.Component {
	return layouts.Base("Workout session", group(
		header("Workout session", "Pick a day, record what you did and save it to your progress."),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := ui.NewHTML(w)
			h.Component(ctx, form.Error(errMsg))
			if view == nil || view.Plan == nil || !view.Plan.HasSchedule() {
				h.Component(ctx, empty("You need a workout plan with a weekly schedule first.", button.Button(button.Props{Label: "Go to workout plan", Href: "/workout-plan"})))
				return h.Err()
			}

			p := view.Plan
			day, ok := p.Day(selected)
			if !ok {
				day = p.WeeklySchedule[0]
			}

			h.Raw(`<nav class="mb-6 flex flex-wrap gap-2">`)
			for _, d := range p.WeeklySchedule {
				h.Raw("<a")
				h.Href("href", "/workout-session?day="+url.QueryEscape(d.Label))
				if d.Label == day.Label {
					h.Class("rounded-full px-3 py-1 text-sm", "bg-indigo-600 text-white")
				} else {
					h.Class("rounded-full px-3 py-1 text-sm", "bg-white text-slate-700 border border-slate-200")
				}
				h.Raw(">")
				h.Text(d.Label)
				h.Raw("</a>")
			}
			h.Raw("</nav>")

			if len(day.Entries) == 0 {
				h.Component(ctx, empty("No exercises scheduled for this day.", nil))
				return h.Err()
			}

			h.Raw(`<form method="post" action="/workout-session" class="space-y-4">`)
			h.Component(ctx, form.CSRF())
			h.Raw(`<input type="hidden" name="day"`)
			h.Attr("value", day.Label)
			h.Raw(">")
			for i, e := range day.Entries {
				h.Component(ctx, sessionEntry(i, e))
			}
			h.Component(ctx, button.Button(button.Props{Label: "Save session"}))
			h.Raw("</form>")
			return h.Err()
		}),
	))
}

func sessionEntry(i int, e plan.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n := strconv.Itoa(i)
		name := e.Name
		if name == "" {
			name = "Exercise"
		}

		h := ui.NewHTML(w)
		h.Raw(`<div class="rounded-xl border border-slate-200 bg-white p-4"><label class="flex items-center gap-3 font-medium"><input type="checkbox" value="true" class="h-4 w-4"`)
		h.Attr("name", "completed_"+n)
		h.Raw(">")
		h.Text(name)
		h.Raw(`</label><div class="mt-3 grid grid-cols-2 gap-3 sm:grid-cols-4">`)
		h.Component(ctx, form.Input(form.InputProps{Label: "Sets", Name: "sets_" + n, Type: "number", Placeholder: e.Sets.String(), Attrs: map[string]string{"min": "0"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Reps", Name: "reps_" + n, Type: "number", Placeholder: e.Reps.String(), Attrs: map[string]string{"min": "0"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Weight (kg)", Name: "weight_" + n, Type: "number", Placeholder: e.Weight.String(), Attrs: map[string]string{"min": "0", "step": "any"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Notes", Name: "notes_" + n, Placeholder: e.Notes}))
		h.Raw("</div></div>")
		return h.Err()
	})
}
