package card

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ui"
)

type Props struct {
	ID          string
	Title       string
	Description string
	Class       string
}

func Card(p Props, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw("<section")
		if p.ID != "" {
			h.Attr("id", p.ID)
		}
		h.Class("rounded-xl border border-slate-200 bg-white p-6 shadow-sm", p.Class)
		h.Raw(">")
		if p.Title != "" {
			h.Raw(`<h2 class="text-lg font-semibold text-slate-900">`)
			h.Text(p.Title)
			h.Raw("</h2>")
		}
		if p.Description != "" {
			h.Raw(`<p class="mt-1 text-sm text-slate-500">`)
			h.Text(p.Description)
			h.Raw("</p>")
		}
		h.Raw(`<div class="mt-4">`)
		h.Component(ctx, body)
		h.Raw("</div></section>")
		return h.Err()
	})
}

// Stat is a small labelled number.
func Stat(label, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="rounded-lg bg-slate-50 p-4"><p class="text-xs uppercase tracking-wide text-slate-500">`)
		h.Text(label)
		h.Raw(`</p><p class="mt-1 text-2xl font-semibold text-slate-900">`)
		h.Text(value)
		h.Raw("</p></div>")
		return h.Err()
	})
}
