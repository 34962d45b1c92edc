package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/button"
	"github.com/optifit/web/internal/ui/components/form"
	"github.com/optifit/web/internal/ui/layouts"
)

type SignupForm struct {
	Name  string
	Email string
}

func Login(email, errMsg string) templ.Component {
	return layouts.Base("Log in", authCard("Welcome back", "Log in to continue your training.", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<form method="post" action="/login" class="space-y-4">`)
		h.Component(ctx, form.CSRF())
		h.Component(ctx, form.Error(errMsg))
		h.Component(ctx, form.Input(form.InputProps{Label: "Email", Name: "email", Type: "email", Value: email, Required: true, Attrs: map[string]string{"autocomplete": "email"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Password", Name: "password", Type: "password", Required: true, Attrs: map[string]string{"autocomplete": "current-password"}}))
		h.Component(ctx, button.Button(button.Props{Label: "Log in", Class: "w-full"}))
		h.Raw(`</form><p class="mt-4 text-center text-sm text-slate-500">No account yet? <a href="/signup" class="font-medium text-indigo-600">Sign up</a></p>`)
		return h.Err()
	})))
}

func Signup(f SignupForm, errMsg string) templ.Component {
	return layouts.Base("Sign up", authCard("Create your account", "Get a plan built around your goals.", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<form method="post" action="/signup" class="space-y-4">`)
		h.Component(ctx, form.CSRF())
		h.Component(ctx, form.Error(errMsg))
		h.Component(ctx, form.Input(form.InputProps{Label: "Name", Name: "name", Value: f.Name, Required: true, Attrs: map[string]string{"autocomplete": "name"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Email", Name: "email", Type: "email", Value: f.Email, Required: true, Attrs: map[string]string{"autocomplete": "email"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Password", Name: "password", Type: "password", Required: true, Attrs: map[string]string{"autocomplete": "new-password", "minlength": "8"}}))
		h.Component(ctx, form.Input(form.InputProps{Label: "Confirm password", Name: "confirm_password", Type: "password", Required: true, Attrs: map[string]string{"autocomplete": "new-password"}}))
		h.Component(ctx, button.Button(button.Props{Label: "Create account", Class: "w-full"}))
		h.Raw(`</form><p class="mt-4 text-center text-sm text-slate-500">Already registered? <a href="/login" class="font-medium text-indigo-600">Log in</a></p>`)
		return h.Err()
	})))
}

func authCard(title, subtitle string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<div class="mx-auto mt-8 max-w-md rounded-xl border border-slate-200 bg-white p-8 shadow-sm"><h1 class="text-2xl font-bold">`)
		h.Text(title)
		h.Raw(`</h1><p class="mb-6 mt-1 text-sm text-slate-500">`)
		h.Text(subtitle)
		h.Raw("</p>")
		h.Component(ctx, body)
		h.Raw("</div>")
		return h.Err()
	})
}
