package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/layouts"
)

func planPath(kind plan.Kind) string {
	if kind == plan.KindDiet {
		return "/diet-plan"
	}
	return "/workout-plan"
}

func planTitle(kind plan.Kind) string {
	if kind == plan.KindDiet {
		return "Diet plan"
	}
	return "Workout plan"
}

// PlanPage shows one plan kind with its generate action.
func PlanPage(kind plan.Kind, view *service.PlanView) templ.Component {
	generate := button.Button(button.Props{
		Label: "Generate new plan",
		Type:  "button",
		Attrs: map[string]string{
			"hx-post":         planPath(kind) + "/generate",
			"hx-target":       "#plan-content",
			"hx-swap":         "outerHTML",
			"hx-disabled-elt": "this",
		},
	})
	subtitle := "Your personalised weekly training."
	if kind == plan.KindDiet {
		subtitle = "Your personalised meals and macros."
	}
	return layouts.Base(planTitle(kind), group(header(planTitle(kind), subtitle, generate), PlanContent(kind, view)))
}

// PlanContent is the swappable plan body. It refetches itself when a
// planUpdated event reaches the page.
func PlanContent(kind plan.Kind, view *service.PlanView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div id="plan-content" hx-trigger="planUpdated from:body" hx-select="#plan-content" hx-swap="outerHTML" class="space-y-6"`)
		h.Href("hx-get", planPath(kind))
		h.Raw(">")

		switch {
		case view == nil || view.Plan == nil:
			h.Component(ctx, empty("We could not load this plan right now. Please try again shortly.", nil))
		case view.Plan.IsEmpty():
			h.Component(ctx, empty("You don't have a "+string(kind)+" plan yet. Generate one to get started.", nil))
		default:
			if view.Stale {
				h.Raw(`<div class="rounded-md border border-amber-200 bg-amber-50 p-3 text-sm text-amber-900">Showing your last saved plan from `)
				h.Text(view.FetchedAt.Format("Jan 2, 15:04"))
				h.Raw(". The plan service could not be reached.</div>")
			}
			h.Component(ctx, planBody(view.Plan))
		}

		h.Raw("</div>")
		return h.Err()
	})
}

func planBody(p *plan.Plan) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)

		if p.Name != "" || p.StartDate != "" || p.Fallback || p.ExtractedFromText {
			h.Raw(`<div class="flex flex-wrap items-center gap-3">`)
			if p.Name != "" {
				h.Raw(`<h2 class="text-xl font-semibold">`)
				h.Text(p.Name)
				h.Raw("</h2>")
			}
			if p.StartDate != "" {
				h.Raw(`<span class="text-sm text-slate-500">Starts `)
				h.Text(p.StartDate)
				h.Raw("</span>")
			}
			if p.Fallback {
				h.Component(ctx, badge("Auto-estimated"))
			}
			if p.ExtractedFromText {
				h.Component(ctx, badge("Extracted from AI text"))
			}
			h.Raw("</div>")
		}

		if !p.Macros.IsZero() {
			h.Component(ctx, macros(p.Macros))
		}

		if p.HasSchedule() {
			h.Raw(`<div class="grid gap-4 md:grid-cols-2">`)
			for _, day := range p.WeeklySchedule {
				h.Component(ctx, dayCard(p.Kind, day))
			}
			h.Raw("</div>")
		} else if len(p.Meals) > 0 {
			h.Component(ctx, dayCard(p.Kind, plan.Day{Label: "Daily meals", Entries: p.Meals}))
		}

		if !p.Outline.IsZero() {
			h.Raw(`<div class="rounded-xl border border-slate-200 bg-white p-6">`)
			if p.Outline.RecommendedSplit != "" {
				h.Raw(`<h3 class="font-semibold">Recommended split</h3><p class="mt-1 whitespace-pre-wrap text-sm text-slate-700">`)
				h.Text(p.Outline.RecommendedSplit)
				h.Raw("</p>")
			}
			if p.Outline.Progression != "" {
				h.Raw(`<h3 class="mt-4 font-semibold">Progression</h3><p class="mt-1 whitespace-pre-wrap text-sm text-slate-700">`)
				h.Text(p.Outline.Progression)
				h.Raw("</p>")
			}
			h.Raw("</div>")
		}

		if text := p.Text(); text != "" {
			h.Raw(`<div id="plan-summary" class="rounded-xl border border-slate-200 bg-white p-6"><h3 class="font-semibold">Summary</h3><p class="mt-2 whitespace-pre-wrap text-sm leading-relaxed text-slate-700">`)
			h.Text(text)
			h.Raw("</p></div>")
		}
		return h.Err()
	})
}

func dayCard(kind plan.Kind, day plan.Day) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="rounded-xl border border-slate-200 bg-white p-5"><div class="flex items-baseline justify-between gap-2"><h3 class="font-semibold">`)
		h.Text(day.Label)
		h.Raw("</h3>")
		if day.Focus != "" {
			h.Raw(`<span class="text-sm text-indigo-600">`)
			h.Text(day.Focus)
			h.Raw("</span>")
		}
		h.Raw("</div>")

		switch {
		case day.RefersToSummary:
			h.Raw(`<p class="mt-3 text-sm text-slate-500">Details for this day are in the <a href="#plan-summary" class="underline">plan summary</a>.</p>`)
		case len(day.Entries) == 0:
			h.Raw(`<p class="mt-3 text-sm text-slate-500">Rest day.</p>`)
		default:
			h.Raw(`<ul class="mt-3 divide-y divide-slate-100">`)
			for _, e := range day.Entries {
				h.Component(ctx, entryRow(kind, e))
			}
			h.Raw("</ul>")
		}
		h.Raw("</div>")
		return h.Err()
	})
}

func entryRow(kind plan.Kind, e plan.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<li class="py-2"><div class="flex justify-between gap-2"><span class="font-medium">`)
		h.Text(e.Name)
		h.Raw(`</span><span class="text-sm text-slate-500">`)
		if kind == plan.KindDiet {
			if !e.Calories.IsZero() {
				h.Text(e.Calories.String() + " kcal")
			}
		} else {
			if !e.Sets.IsZero() || !e.Reps.IsZero() {
				h.Text(e.Sets.Or("-") + " × " + e.Reps.Or("-"))
			}
			if !e.Weight.IsZero() {
				h.Text(" @ " + e.Weight.String())
			}
		}
		h.Raw("</span></div>")

		var details []string
		for _, d := range []string{e.MuscleGroup, e.Equipment, e.Intensity} {
			if d != "" {
				details = append(details, d)
			}
		}
		if !e.Rest.IsZero() {
			details = append(details, "rest "+e.Rest.String())
		}
		if len(details) > 0 {
			h.Raw(`<p class="text-xs text-slate-500">`)
			for i, d := range details {
				if i > 0 {
					h.Raw(" · ")
				}
				h.Text(d)
			}
			h.Raw("</p>")
		}

		if len(e.Foods) > 0 {
			h.Raw(`<ul class="mt-1 list-disc pl-5 text-sm text-slate-600">`)
			for _, f := range e.Foods {
				h.Raw("<li>")
				h.Text(f.Name)
				if !f.Quantity.IsZero() {
					h.Text(" (" + f.Quantity.String() + ")")
				}
				if !f.Calories.IsZero() {
					h.Text(" " + f.Calories.String() + " kcal")
				}
				h.Raw("</li>")
			}
			h.Raw("</ul>")
		}

		if e.Notes != "" {
			h.Raw(`<p class="mt-1 text-xs italic text-slate-500">`)
			h.Text(e.Notes)
			h.Raw("</p>")
		}
		h.Raw("</li>")
		return h.Err()
	})
}

func macros(m plan.Macros) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="grid grid-cols-2 gap-3 sm:grid-cols-5">`)
		for _, item := range []struct {
			label string
			value plan.Scalar
		}{
			{"Calories", m.Calories},
			{"Protein", m.Protein},
			{"Carbs", m.Carbs},
			{"Fats", m.Fats},
			{"Hydration", m.Hydration},
		} {
			h.Raw(`<div class="rounded-lg bg-white p-3 text-center shadow-sm"><p class="text-xs uppercase text-slate-500">`)
			h.Text(item.label)
			h.Raw(`</p><p class="text-lg font-semibold">`)
			h.Text(item.value.Or("-"))
			h.Raw("</p></div>")
		}
		h.Raw("</div>")
		return h.Err()
	})
}

func badge(label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<span class="rounded-full bg-amber-100 px-2 py-0.5 text-xs font-medium text-amber-800">`)
		h.Text(label)
		h.Raw("</span>")
		return h.Err()
	})
}
