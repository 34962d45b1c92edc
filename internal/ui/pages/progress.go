package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/card"
	"github.com/optifit/web/internal/ui/components/form"
	"github.com/optifit/web/internal/ui/layouts"
)

func Progress(page *service.ProgressPage) templ.Component {
	export := button.Button(button.Props{Label: "Export CSV", Href: "/progress/export", Variant: button.VariantSecondary})
	return layouts.Base("Progress", group(
		header("Progress", "Your streaks, records and body weight over time.", export),
		ProgressBody(page),
	))
}

// ProgressBody is re-rendered after logging a metric or an exercise.
func ProgressBody(page *service.ProgressPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div id="progress-body" class="space-y-6">`)

		h.Raw(`<div class="grid grid-cols-2 gap-4 md:grid-cols-4">`)
		h.Component(ctx, card.Stat("Current weight", formatFloat(page.Stats.CurrentWeight)))
		h.Component(ctx, card.Stat("Total workouts", formatInt(page.Stats.TotalWorkouts)))
		h.Component(ctx, card.Stat("Current streak", formatInt(page.Summary.Streaks.CurrentStreak)+" days"))
		h.Component(ctx, card.Stat("Longest streak", formatInt(page.Summary.Streaks.LongestStreak)+" days"))
		h.Raw("</div>")

		h.Component(ctx, card.Card(card.Props{Title: "Last 30 days"}, calendar(page.Calendar)))

		h.Raw(`<div class="grid gap-6 md:grid-cols-2">`)
		h.Component(ctx, card.Card(card.Props{Title: "Log an exercise"}, logExerciseForm()))
		h.Component(ctx, card.Card(card.Props{Title: "Add body weight"}, metricForm()))
		h.Component(ctx, card.Card(card.Props{Title: "Today"}, exerciseLogs(page.Summary.TodaysLogs, "Nothing logged today.")))
		h.Component(ctx, card.Card(card.Props{Title: "Personal records"}, records(page.Summary.PRs)))
		h.Component(ctx, card.Card(card.Props{Title: "Body weight"}, metrics(page.Metrics)))
		h.Component(ctx, card.Card(card.Props{Title: "Recent sessions"}, workoutLogs(page.WorkoutLogs)))
		h.Raw("</div>")

		h.Component(ctx, card.Card(card.Props{Title: "Exercise history"}, historyForm()))
		h.Raw("</div>")
		return h.Err()
	})
}

func calendar(days []model.CalendarDay) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<ol class="grid grid-cols-10 gap-2">`)
		for _, d := range days {
			h.Raw("<li")
			classes := "flex flex-col items-center rounded-md p-1 text-xs"
			switch {
			case d.IsWorkoutDay:
				h.Class(classes, "bg-emerald-500 text-white")
			default:
				h.Class(classes, "bg-slate-100 text-slate-500")
			}
			if d.IsToday {
				h.Attr("aria-current", "date")
			}
			h.Attr("title", d.Date)
			h.Raw("><span>")
			h.Text(d.Weekday)
			h.Raw(`</span><span class="font-semibold">`)
			h.Text(formatInt(d.DayOfMonth))
			h.Raw("</span></li>")
		}
		h.Raw("</ol>")
		return h.Err()
	})
}

func logExerciseForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<form class="grid grid-cols-2 gap-3" hx-post="/progress/exercise" hx-target="#progress-body" hx-swap="outerHTML">`)
		h.Raw(`<div class="col-span-2">`)
		h.Component(ctx, form.Input(form.InputProps{Label: "Exercise", Name: "exerciseName", Required: true, Placeholder: "Bench press"}))
		h.Raw("</div>")
		h.Component(ctx, form.Input(form.InputProps{Label: "Weight (kg)", Name: "weight", Type: "number", Attrs: map[string]string{"min": "0", "step": "any"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Reps", Name: "reps", Type: "number", Attrs: map[string]string{"min": "0"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Sets", Name: "sets", Type: "number", Attrs: map[string]string{"min": "0"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Date", Name: "date", Type: "date"}))
		h.Raw(`<div class="col-span-2">`)
		h.Component(ctx, form.Input(form.InputProps{Label: "Notes", Name: "notes"}))
		h.Raw(`</div><div class="col-span-2">`)
		h.Component(ctx, button.Button(button.Props{Label: "Log exercise"}))
		h.Raw("</div></form>")
		return h.Err()
	})
}

func metricForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<form class="space-y-3" hx-post="/progress/metric" hx-target="#progress-body" hx-swap="outerHTML">`)
		h.Component(ctx, form.Input(form.InputProps{Label: "Weight (kg)", Name: "weight", Type: "number", Required: true, Attrs: map[string]string{"min": "0", "step": "any"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Notes", Name: "notes"}))
		h.Component(ctx, button.Button(button.Props{Label: "Add"}))
		h.Raw("</form>")
		return h.Err()
	})
}

func historyForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<form class="flex items-end gap-3" hx-get="/progress/history" hx-target="#history" hx-swap="innerHTML"><div class="flex-1">`)
		h.Component(ctx, form.Input(form.InputProps{Label: "Exercise", Name: "exercise", Required: true, Placeholder: "Squat"}))
		h.Raw("</div>")
		h.Component(ctx, button.Button(button.Props{Label: "Show", Variant: button.VariantSecondary}))
		h.Raw(`</form><div id="history" class="mt-4"></div>`)
		return h.Err()
	})
}

// ExerciseHistory lists past entries for one exercise and the best lifts
// of other users.
func ExerciseHistory(name string, logs []model.ExerciseLog, leaders []model.LeaderboardEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<h3 class="font-semibold">`)
		h.Text(name)
		h.Raw("</h3>")
		h.Component(ctx, exerciseLogs(logs, "No history for this exercise yet."))

		if len(leaders) > 0 {
			h.Raw(`<h3 class="mt-4 font-semibold">Leaderboard</h3><ol class="mt-2 list-decimal space-y-1 pl-5 text-sm">`)
			for _, l := range leaders {
				h.Raw("<li>")
				h.Text(l.Name + " - " + formatFloat(l.Weight) + " kg")
				if l.Reps > 0 {
					h.Text(" × " + formatInt(l.Reps))
				}
				h.Raw("</li>")
			}
			h.Raw("</ol>")
		}
		return h.Err()
	})
}

func exerciseLogs(logs []model.ExerciseLog, none string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		if len(logs) == 0 {
			h.Raw(`<p class="text-sm text-slate-500">`)
			h.Text(none)
			h.Raw("</p>")
			return h.Err()
		}
		h.Raw(`<table class="w-full text-left text-sm"><thead class="text-xs uppercase text-slate-500"><tr><th class="py-1">Date</th><th>Exercise</th><th>Sets</th><th>Reps</th><th>Weight</th></tr></thead><tbody class="divide-y divide-slate-100">`)
		for _, l := range logs {
			h.Raw(`<tr><td class="py-1">`)
			h.Text(l.Day())
			h.Raw("</td><td>")
			h.Text(l.ExerciseName)
			h.Raw("</td><td>")
			h.Text(formatInt(l.Sets))
			h.Raw("</td><td>")
			h.Text(formatInt(l.Reps))
			h.Raw("</td><td>")
			h.Text(formatFloat(l.Weight))
			h.Raw("</td></tr>")
		}
		h.Raw("</tbody></table>")
		return h.Err()
	})
}

func records(prs []model.PersonalRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		if len(prs) == 0 {
			h.Raw(`<p class="text-sm text-slate-500">No records yet.</p>`)
			return h.Err()
		}
		h.Raw(`<ul class="divide-y divide-slate-100 text-sm">`)
		for _, pr := range prs {
			h.Raw(`<li class="flex justify-between py-1"><span>`)
			h.Text(pr.ExerciseName)
			h.Raw(`</span><span class="font-semibold">`)
			h.Text(formatFloat(pr.PR) + " kg")
			h.Raw("</span></li>")
		}
		h.Raw("</ul>")
		return h.Err()
	})
}

func metrics(ms []model.Metric) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		if len(ms) == 0 {
			h.Raw(`<p class="text-sm text-slate-500">No measurements yet.</p>`)
			return h.Err()
		}
		h.Raw(`<ul class="divide-y divide-slate-100 text-sm">`)
		for _, m := range ms {
			h.Raw(`<li class="flex justify-between py-1"><span>`)
			h.Text(m.Date.Format(model.DateLayout))
			h.Raw(`</span><span class="font-semibold">`)
			h.Text(formatFloat(m.Weight) + " kg")
			h.Raw("</span></li>")
		}
		h.Raw("</ul>")
		return h.Err()
	})
}

func workoutLogs(logs []model.WorkoutLog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		if len(logs) == 0 {
			h.Raw(`<p class="text-sm text-slate-500">No sessions saved yet.</p>`)
			return h.Err()
		}
		h.Raw(`<ul class="divide-y divide-slate-100 text-sm">`)
		for _, l := range logs {
			h.Raw(`<li class="py-1"><span class="font-medium">`)
			h.Text(l.Day())
			h.Raw(`</span> <span class="text-slate-500">`)
			h.Text(l.Notes)
			h.Raw(`</span> <span class="text-slate-400">`)
			h.Text(formatInt(len(l.Exercises)) + " exercises")
			h.Raw("</span></li>")
		}
		h.Raw("</ul>")
		return h.Err()
	})
}
