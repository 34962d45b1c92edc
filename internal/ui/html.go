package ui

import (
	"context"
	"io"
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HTML writes markup for the components in this tree. Text and attribute
// values are escaped; Raw is for trusted markup only. The first write error
// sticks and is reported by Err.
type HTML struct {
	w   io.Writer
	err error
}

func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

func (h *HTML) Raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

func (h *HTML) Attr(name, value string) {
	h.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Attrs writes attributes in name order. Empty values are skipped.
func (h *HTML) Attrs(attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if attrs[name] != "" {
			h.Attr(name, attrs[name])
		}
	}
}

// Href writes a sanitized URL attribute.
func (h *HTML) Href(name, url string) {
	h.Attr(name, string(templ.URL(url)))
}

// Class writes a class attribute, letting later classes win conflicts.
func (h *HTML) Class(classes ...string) {
	h.Attr("class", twmerge.Merge(classes...))
}

func (h *HTML) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func (h *HTML) Err() error {
	return h.err
}

// Label turns an enum value like "muscle_gain" into "Muscle Gain".
func Label(value string) string {
	value = strings.NewReplacer("_", " ", "-", " ").Replace(value)
	return cases.Title(language.English).String(value)
}
