package button

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ui"
)

type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantGhost     Variant = "ghost"
	VariantDanger    Variant = "danger"
)

type Props struct {
	Label   string
	Variant Variant
	Type    string
	// Href renders a link styled as a button.
	Href  string
	Class string
	Attrs map[string]string
}

const base = "inline-flex items-center justify-center gap-2 rounded-md px-4 py-2 text-sm font-medium transition-colors disabled:opacity-50"

var variants = map[Variant]string{
	VariantPrimary:   "bg-indigo-600 text-white hover:bg-indigo-700",
	VariantSecondary: "border border-slate-300 bg-white text-slate-900 hover:bg-slate-50",
	VariantGhost:     "text-slate-700 hover:bg-slate-100",
	VariantDanger:    "bg-red-600 text-white hover:bg-red-700",
}

func Button(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Variant == "" {
			p.Variant = VariantPrimary
		}

		h := ui.NewHTML(w)
		if p.Href != "" {
			h.Raw("<a")
			h.Href("href", p.Href)
		} else {
			if p.Type == "" {
				p.Type = "submit"
			}
			h.Raw("<button")
			h.Attr("type", p.Type)
		}
		h.Class(base, variants[p.Variant], p.Class)
		h.Attrs(p.Attrs)
		h.Raw(">")
		h.Text(p.Label)
		if p.Href != "" {
			h.Raw("</a>")
		} else {
			h.Raw("</button>")
		}
		return h.Err()
	})
}
