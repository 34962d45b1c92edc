package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/card"
	"github.com/optifit/web/internal/ui/components/form"
	"github.com/optifit/web/internal/ui/layouts"
)

func Exercises(list []model.Exercise, filter model.ExerciseFilter, errMsg string) templ.Component {
	return layouts.Base("Exercises", group(
		header("Exercise library", "Search the catalog by name, muscle group, equipment or difficulty."),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := ui.NewHTML(w)
			h.Raw(`<form method="get" action="/exercises" class="mb-6 grid gap-3 sm:grid-cols-4" hx-get="/exercises" hx-target="#exercise-results" hx-swap="outerHTML" hx-push-url="true" hx-trigger="input changed delay:300ms, change, submit">`)
			h.Component(ctx, form.Input(form.InputProps{Label: "Search", Name: "search", Type: "search", Value: filter.Search, Placeholder: "e.g. squat"}))
			h.Component(ctx, form.Select(form.SelectProps{Label: "Muscle group", Name: "muscleGroup", Options: form.Options(service.MuscleGroups...), Selected: filter.MuscleGroup, Blank: "All"}))
			h.Component(ctx, form.Select(form.SelectProps{Label: "Equipment", Name: "equipment", Options: form.Options(service.Equipment...), Selected: filter.Equipment, Blank: "All"}))
			h.Component(ctx, form.Select(form.SelectProps{Label: "Difficulty", Name: "difficulty", Options: form.Options(service.Difficulties...), Selected: filter.Difficulty, Blank: "All"}))
			h.Raw("</form>")
			h.Component(ctx, ExerciseResults(list, errMsg))
			return h.Err()
		}),
	))
}

// ExerciseResults is the list swapped in while filtering.
func ExerciseResults(list []model.Exercise, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div id="exercise-results">`)
		switch {
		case errMsg != "":
			h.Component(ctx, form.Error(errMsg))
		case len(list) == 0:
			h.Component(ctx, empty("No exercises match these filters.", nil))
		default:
			h.Raw(`<ul class="grid gap-4 sm:grid-cols-2 lg:grid-cols-3">`)
			for _, ex := range list {
				h.Raw(`<li><a class="block h-full rounded-xl border border-slate-200 bg-white p-5 hover:border-indigo-400"`)
				h.Href("href", "/exercises/"+url.PathEscape(ex.ID))
				h.Raw(`><h2 class="font-semibold">`)
				h.Text(ex.Name)
				h.Raw(`</h2><p class="mt-1 text-xs text-slate-500">`)
				h.Text(ui.Label(ex.PrimaryMuscle))
				if ex.Difficulty != "" {
					h.Text(" · " + ui.Label(ex.Difficulty))
				}
				h.Raw("</p>")
				if ex.Description != "" {
					h.Raw(`<p class="mt-2 line-clamp-3 text-sm text-slate-600">`)
					h.Text(ex.Description)
					h.Raw("</p>")
				}
				h.Raw("</a></li>")
			}
			h.Raw("</ul>")
		}
		h.Raw("</div>")
		return h.Err()
	})
}

func ExerciseDetail(ex *model.Exercise) templ.Component {
	back := button.Button(button.Props{Label: "Back to library", Href: "/exercises", Variant: button.VariantSecondary})
	return layouts.Base(ex.Name, group(
		header(ex.Name, ex.Description, back),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := ui.NewHTML(w)
			h.Raw(`<div class="mb-6 flex flex-wrap gap-2">`)
			for _, tag := range append([]string{ex.PrimaryMuscle, ex.Difficulty}, ex.MuscleGroups...) {
				if tag == "" {
					continue
				}
				h.Raw(`<span class="rounded-full bg-indigo-50 px-3 py-1 text-xs font-medium text-indigo-700">`)
				h.Text(ui.Label(tag))
				h.Raw("</span>")
			}
			h.Raw("</div>")

			if ex.ThumbnailURL != "" {
				h.Raw(`<img class="mb-6 max-h-72 rounded-xl object-cover"`)
				h.Href("src", ex.ThumbnailURL)
				h.Attr("alt", ex.Name)
				h.Raw(">")
			}

			h.Raw(`<div class="grid gap-6 md:grid-cols-2">`)
			h.Component(ctx, listCard("Equipment", ex.EquipmentList(), false))
			h.Component(ctx, listCard("Instructions", ex.Instructions, true))
			h.Component(ctx, listCard("Tips", ex.Tips, false))
			h.Component(ctx, listCard("Common mistakes", ex.CommonMistakes, false))
			h.Component(ctx, listCard("Alternatives", ex.Alternatives, false))
			h.Raw("</div>")

			if ex.VideoURL != "" {
				h.Raw(`<p class="mt-6"><a class="font-medium text-indigo-600 underline" target="_blank" rel="noopener"`)
				h.Href("href", ex.VideoURL)
				h.Raw(">Watch demonstration</a></p>")
			}
			return h.Err()
		}),
	))
}

func listCard(title string, items []string, ordered bool) templ.Component {
	if len(items) == 0 {
		return templ.NopComponent
	}
	tag := "ul"
	listClass := "list-disc"
	if ordered {
		tag = "ol"
		listClass = "list-decimal"
	}
	return card.Card(card.Props{Title: title}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw("<" + tag)
		h.Class("space-y-1 pl-5 text-sm text-slate-700", listClass)
		h.Raw(">")
		for _, item := range items {
			h.Raw("<li>")
			h.Text(item)
			h.Raw("</li>")
		}
		h.Raw("</" + tag + ">")
		return h.Err()
	}))
}
