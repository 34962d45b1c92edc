package layouts

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/chat"
	"github.com/optifit/web/internal/ui/components/form"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

type navItem struct {
	Href  string
	Label string
}

var appNav = []navItem{
	{"/dashboard", "Dashboard"},
	{"/workout-plan", "Workout"},
	{"/diet-plan", "Diet"},
	{"/workout-session", "Session"},
	{"/exercises", "Exercises"},
	{"/progress", "Progress"},
	{"/education", "Learn"},
	{"/onboarding", "Profile"},
}

const baseScript = `
document.addEventListener('click', function (e) {
  var btn = e.target.closest('[data-toast-dismiss]');
  if (btn) btn.closest('.toast').remove();
});
function armToasts() {
  document.querySelectorAll('.toast:not([data-armed])').forEach(function (t) {
    t.setAttribute('data-armed', '');
    setTimeout(function () { t.remove(); }, 5000);
  });
}
document.addEventListener('DOMContentLoaded', armToasts);
document.addEventListener('htmx:afterSettle', armToasts);
document.addEventListener('htmx:oobAfterSwap', armToasts);
document.addEventListener('htmx:afterRequest', function (e) {
  if (e.detail.successful && e.target.matches('form[data-reset]')) e.target.reset();
});
`

const eventsScript = `
if (window.EventSource) {
  var planEvents = new EventSource('/events');
  planEvents.addEventListener('plan-updated', function (e) {
    var detail = {};
    try { detail = JSON.parse(e.data); } catch (_) {}
    htmx.trigger(document.body, 'planUpdated', detail);
  });
}
`

// Base is the page shell: head, navigation, toast container and, for
// logged-in users, the assistant panel and plan event stream.
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg := ctxkeys.Config(ctx)
		sess := ctxkeys.Session(ctx)
		nonce := templ.GetNonce(ctx)

		appName := "OptiFit"
		chatEnabled := false
		if cfg != nil {
			appName = cfg.AppName
			chatEnabled = cfg.ChatEnabled
		}

		h := ui.NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw("<title>")
		if title != "" {
			h.Text(title + " · ")
		}
		h.Text(appName)
		h.Raw("</title>")
		for _, src := range []string{tailwindSrc, htmxSrc} {
			h.Raw("<script")
			h.Attr("src", src)
			h.Attr("nonce", nonce)
			h.Raw("></script>")
		}
		h.Raw("<script")
		h.Attr("nonce", nonce)
		h.Raw(">", baseScript)
		if sess != nil {
			h.Raw(eventsScript)
		}
		h.Raw("</script></head>")

		h.Raw(`<body class="min-h-screen bg-slate-50 text-slate-900"`)
		h.Attr("hx-headers", `{"X-CSRF-Token": "`+ctxkeys.CSRFToken(ctx)+`"}`)
		h.Raw(">")

		h.Component(ctx, navbar(appName))

		h.Raw(`<main id="main" class="mx-auto max-w-6xl px-4 py-8">`)
		h.Component(ctx, content)
		h.Raw("</main>")

		if sess != nil && chatEnabled {
			h.Component(ctx, chat.Widget())
		}

		h.Raw(`<div id="toast-container" class="pointer-events-none fixed bottom-4 right-4 z-50 flex flex-col gap-2"></div>`)
		h.Raw("</body></html>")
		return h.Err()
	})
}

func navbar(appName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sess := ctxkeys.Session(ctx)
		path := ctxkeys.URLPath(ctx)

		h := ui.NewHTML(w)
		h.Raw(`<header class="border-b border-slate-200 bg-white"><nav class="mx-auto flex max-w-6xl items-center gap-6 px-4 py-3">`)
		h.Raw(`<a href="/" class="text-lg font-bold text-indigo-600">`)
		h.Text(appName)
		h.Raw("</a>")

		if sess == nil {
			h.Raw(`<div class="ml-auto flex gap-3">`)
			h.Raw(`<a href="/login" class="text-sm font-medium text-slate-700 hover:text-indigo-600">Log in</a>`)
			h.Raw(`<a href="/signup" class="text-sm font-medium text-indigo-600">Sign up</a>`)
			h.Raw("</div></nav></header>")
			return h.Err()
		}

		h.Raw(`<ul class="flex flex-wrap gap-4">`)
		for _, item := range appNav {
			h.Raw("<li><a")
			h.Href("href", item.Href)
			if strings.HasPrefix(path, item.Href) {
				h.Class("text-sm font-medium", "text-indigo-600")
				h.Attr("aria-current", "page")
			} else {
				h.Class("text-sm font-medium", "text-slate-600 hover:text-indigo-600")
			}
			h.Raw(">")
			h.Text(item.Label)
			h.Raw("</a></li>")
		}
		h.Raw("</ul>")

		h.Raw(`<form method="post" action="/logout" class="ml-auto flex items-center gap-3">`)
		h.Raw(`<span class="text-sm text-slate-500">`)
		h.Text(sess.User().FirstName())
		h.Raw("</span>")
		h.Component(ctx, form.CSRF())
		h.Raw(`<button type="submit" class="text-sm font-medium text-slate-700 hover:text-red-600">Log out</button>`)
		h.Raw("</form></nav></header>")
		return h.Err()
	})
}
