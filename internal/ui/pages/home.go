package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/layouts"
)

func Home() templ.Component {
	return layouts.Base("", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tagline := "AI-powered workout and diet plans that adapt to you."
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppTagline != "" {
			tagline = cfg.AppTagline
		}

		h := ui.NewHTML(w)
		h.Raw(`<div class="py-16 text-center"><h1 class="text-4xl font-bold tracking-tight text-slate-900 sm:text-5xl">Train smarter, eat better.</h1>`)
		h.Raw(`<p class="mx-auto mt-4 max-w-xl text-lg text-slate-600">`)
		h.Text(tagline)
		h.Raw(`</p><div class="mt-8 flex justify-center gap-3">`)
		if ctxkeys.Session(ctx) != nil {
			h.Component(ctx, button.Button(button.Props{Label: "Go to dashboard", Href: "/dashboard"}))
		} else {
			h.Component(ctx, button.Button(button.Props{Label: "Get started", Href: "/signup"}))
			h.Component(ctx, button.Button(button.Props{Label: "Log in", Href: "/login", Variant: button.VariantSecondary}))
		}
		h.Raw("</div></div>")

		h.Raw(`<div class="grid gap-6 sm:grid-cols-3">`)
		for _, f := range [][2]string{
			{"Personal plans", "Workout and diet plans generated from your profile and goals."},
			{"Track progress", "Log sessions, body weight and personal records in one place."},
			{"Ask the coach", "Chat with the assistant and apply its changes to your plan."},
		} {
			h.Raw(`<div class="rounded-xl border border-slate-200 bg-white p-6"><h2 class="font-semibold">`)
			h.Text(f[0])
			h.Raw(`</h2><p class="mt-2 text-sm text-slate-600">`)
			h.Text(f[1])
			h.Raw("</p></div>")
		}
		h.Raw("</div>")
		return h.Err()
	}))
}
