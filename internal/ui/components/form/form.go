package form

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/ui"
)

const (
	labelClass = "block text-sm font-medium text-slate-700"
	inputClass = "mt-1 block w-full rounded-md border border-slate-300 px-3 py-2 text-sm shadow-sm focus:border-indigo-500 focus:outline-none focus:ring-1 focus:ring-indigo-500"
)

type InputProps struct {
	Label       string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Disabled    bool
	Class       string
	Attrs       map[string]string
}

func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Type == "" {
			p.Type = "text"
		}

		h := ui.NewHTML(w)
		h.Raw(`<label class="block">`)
		if p.Label != "" {
			h.Raw(`<span class="` + labelClass + `">`)
			h.Text(p.Label)
			h.Raw("</span>")
		}
		h.Raw("<input")
		h.Attr("type", p.Type)
		h.Attr("name", p.Name)
		h.Attr("id", p.Name)
		h.Attr("value", p.Value)
		if p.Placeholder != "" {
			h.Attr("placeholder", p.Placeholder)
		}
		if p.Required {
			h.Raw(" required")
		}
		if p.Disabled {
			h.Raw(" disabled")
		}
		h.Class(inputClass, p.Class)
		h.Attrs(p.Attrs)
		h.Raw("></label>")
		return h.Err()
	})
}

type Option struct {
	Value string
	Label string
}

// Options builds options whose labels are the humanized values.
func Options(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: ui.Label(v)}
	}
	return opts
}

type SelectProps struct {
	Label    string
	Name     string
	Options  []Option
	Selected string
	// Blank adds a leading empty option with this label.
	Blank    string
	Disabled bool
	Attrs    map[string]string
}

func Select(p SelectProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<label class="block">`)
		if p.Label != "" {
			h.Raw(`<span class="` + labelClass + `">`)
			h.Text(p.Label)
			h.Raw("</span>")
		}
		h.Raw("<select")
		h.Attr("name", p.Name)
		h.Attr("id", p.Name)
		if p.Disabled {
			h.Raw(" disabled")
		}
		h.Class(inputClass)
		h.Attrs(p.Attrs)
		h.Raw(">")
		if p.Blank != "" {
			h.Raw(`<option value="">`)
			h.Text(p.Blank)
			h.Raw("</option>")
		}
		for _, o := range p.Options {
			h.Raw("<option")
			h.Attr("value", o.Value)
			if o.Value == p.Selected {
				h.Raw(" selected")
			}
			h.Raw(">")
			h.Text(o.Label)
			h.Raw("</option>")
		}
		h.Raw("</select></label>")
		return h.Err()
	})
}

type TextareaProps struct {
	Label       string
	Name        string
	Value       string
	Placeholder string
	Rows        string
	Disabled    bool
}

func Textarea(p TextareaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Rows == "" {
			p.Rows = "3"
		}

		h := ui.NewHTML(w)
		h.Raw(`<label class="block">`)
		if p.Label != "" {
			h.Raw(`<span class="` + labelClass + `">`)
			h.Text(p.Label)
			h.Raw("</span>")
		}
		h.Raw("<textarea")
		h.Attr("name", p.Name)
		h.Attr("id", p.Name)
		h.Attr("rows", p.Rows)
		if p.Placeholder != "" {
			h.Attr("placeholder", p.Placeholder)
		}
		if p.Disabled {
			h.Raw(" disabled")
		}
		h.Class(inputClass)
		h.Raw(">")
		h.Text(p.Value)
		h.Raw("</textarea></label>")
		return h.Err()
	})
}

// CSRF is the hidden token field for plain form posts.
func CSRF() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<input type="hidden"`)
		h.Attr("name", "csrf_token")
		h.Attr("value", ctxkeys.CSRFToken(ctx))
		h.Raw(">")
		return h.Err()
	})
}

// Error renders a form-level error message, or nothing.
func Error(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		h := ui.NewHTML(w)
		h.Raw(`<div class="rounded-md border whitespace-pre-line border-red-200 bg-red-50 p-3 text-sm text-red-800" role="alert">`)
		h.Text(msg)
		h.Raw("</div>")
		return h.Err()
	})
}
