package handler

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/middleware"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/components/toast"
	"github.com/optifit/web/internal/validation"
)

func renderToast(w http.ResponseWriter, r *http.Request, p toast.Props) {
	p.Icon = true
	p.Dismissible = true
	ui.RenderOOB(w, r, toast.Toast(p), "beforeend:#toast-container")
}

// toastOnly answers an HTMX request with a toast and leaves the target
// untouched.
func toastOnly(w http.ResponseWriter, r *http.Request, p toast.Props) {
	w.Header().Set("HX-Reswap", "none")
	renderToast(w, r, p)
}

func errorToast(description string) toast.Props {
	return toast.Props{Title: "Error", Description: description, Variant: toast.VariantError}
}

func successToast(description string) toast.Props {
	return toast.Props{Title: "Success", Description: description, Variant: toast.VariantSuccess}
}

// userMessage returns err's text when it was written for the user and
// fallback otherwise.
func userMessage(err error, fallback string) string {
	if !errors.Is(err, validation.ErrInvalid) {
		return fallback
	}
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}

// sessionExpired ends the session when the backend rejected its token.
func sessionExpired(sessions middleware.Sessions, w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		return false
	}
	middleware.ExpireSession(sessions, w, r)
	return true
}
