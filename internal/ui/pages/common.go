package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ui"
)

func header(title, subtitle string, actions ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="mb-6 flex flex-wrap items-end justify-between gap-4"><div><h1 class="text-2xl font-bold text-slate-900">`)
		h.Text(title)
		h.Raw("</h1>")
		if subtitle != "" {
			h.Raw(`<p class="mt-1 text-slate-500">`)
			h.Text(subtitle)
			h.Raw("</p>")
		}
		h.Raw(`</div><div class="flex gap-2">`)
		for _, a := range actions {
			h.Component(ctx, a)
		}
		h.Raw("</div></div>")
		return h.Err()
	})
}

func empty(message string, action templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="rounded-lg border border-dashed border-slate-300 p-8 text-center text-slate-500"><p>`)
		h.Text(message)
		h.Raw("</p>")
		if action != nil {
			h.Raw(`<div class="mt-4">`)
			h.Component(ctx, action)
			h.Raw("</div>")
		}
		h.Raw("</div>")
		return h.Err()
	})
}

func group(cs ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		for _, c := range cs {
			h.Component(ctx, c)
		}
		return h.Err()
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Text(s)
		return h.Err()
	})
}

func formatFloat(f float64) string {
	if f == 0 {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
