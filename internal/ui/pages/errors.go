package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/layouts"
)

func NotFound() templ.Component {
	return layouts.Base("Not found", empty("This page does not exist.", button.Button(button.Props{Label: "Back home", Href: "/"})))
}

// Loading is shown while the session or profile is still being resolved.
// It asks for path again until the server can decide.
func Loading(path string) templ.Component {
	return layouts.Base("Loading", LoadingContent(path))
}

func LoadingContent(path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div id="gate-loading" class="flex flex-col items-center gap-3 py-24 text-slate-500" hx-trigger="load delay:1s" hx-target="body" hx-swap="innerHTML"`)
		h.Href("hx-get", path)
		h.Raw(`><div class="h-8 w-8 animate-spin rounded-full border-4 border-indigo-200 border-t-indigo-600"></div><p>Loading your profile…</p></div>`)
		return h.Err()
	})
}
