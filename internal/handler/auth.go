package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/ui"
	"github.com/optifit/web/internal/ui/pages"
	"github.com/optifit/web/internal/validation"
)

const genericError = "Something went wrong. Please try again."

type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Login("", ""))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")

	sess, err := h.sessions.Login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		msg := genericError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			msg = "Invalid email or password."
		case errors.Is(err, service.ErrInvalidEmail):
			msg = "Please provide a valid email address."
		default:
			slog.Error("login failed", "error", err, "email", email)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		ui.Render(w, r, pages.Login(email, msg))
		return
	}

	if !h.startSession(w, r, sess, func(msg string) { ui.Render(w, r, pages.Login(email, msg)) }) {
		return
	}

	slog.Info("user logged in", "user_id", sess.UserID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Signup(pages.SignupForm{}, ""))
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	in := service.SignupInput{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	form := pages.SignupForm{Name: in.Name, Email: in.Email}

	sess, err := h.sessions.Signup(r.Context(), in)
	if err != nil {
		msg := genericError
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			msg = "An account with this email already exists."
		case errors.Is(err, service.ErrInvalidEmail):
			msg = "Please provide a valid email address."
		case errors.Is(err, service.ErrPasswordMismatch):
			msg = "Passwords do not match."
		case errors.Is(err, validation.ErrInvalid):
			msg = userMessage(err, genericError)
		default:
			slog.Error("signup failed", "error", err, "email", in.Email)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		ui.Render(w, r, pages.Signup(form, msg))
		return
	}

	if !h.startSession(w, r, sess, func(msg string) { ui.Render(w, r, pages.Signup(form, msg)) }) {
		return
	}

	slog.Info("user signed up", "user_id", sess.UserID)
	http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, sess *model.Session, fail func(string)) bool {
	err := h.sessions.SetCookie(w, sess)
	if err != nil {
		slog.Error("failed to set session cookie", "error", err, "user_id", sess.UserID)
		w.WriteHeader(http.StatusInternalServerError)
		fail(genericError)
		return false
	}
	return true
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	err := h.sessions.End(r.Context(), sess)
	if err != nil {
		slog.Error("failed to end session", "error", err, "user_id", sess.UserID)
	}
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
