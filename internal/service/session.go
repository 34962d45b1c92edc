package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/repository"
	"github.com/optifit/web/internal/validation"
)

const SessionCookie = "session_token"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidSession     = errors.New("invalid session")
)

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SessionService owns the session lifecycle: it is the only component that
// creates or destroys the backend credential bound to a browser.
type SessionService struct {
	api          AuthAPI
	sessions     repository.SessionRepository
	secret       string
	expiry       time.Duration
	isProduction bool
	now          func() time.Time
}

func NewSessionService(
	api AuthAPI,
	sessions repository.SessionRepository,
	secret string,
	expiry time.Duration,
	isProduction bool,
) *SessionService {
	return &SessionService{
		api:          api,
		sessions:     sessions,
		secret:       secret,
		expiry:       expiry,
		isProduction: isProduction,
		now:          time.Now,
	}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if validation.ValidateEmail(email) != nil {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return nil, fmt.Errorf("login rejected: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return s.start(ctx, res)
}

func (s *SessionService) Signup(ctx context.Context, in SignupInput) (*model.Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	err := validation.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	if validation.ValidateEmail(in.Email) != nil {
		return nil, ErrInvalidEmail
	}
	err = validation.ValidatePassword(in.Password)
	if err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	res, err := s.api.Register(ctx, apiclient.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		if strings.Contains(strings.ToLower(apiclient.Message(err)), "exist") {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	if res.User.Name == "" {
		res.User.Name = in.Name
	}
	return s.start(ctx, res)
}

func (s *SessionService) start(ctx context.Context, res *apiclient.AuthResult) (*model.Session, error) {
	now := s.now()
	sess := &model.Session{
		UserID:    res.User.ID,
		Email:     res.User.Email,
		Name:      res.User.Name,
		Token:     res.Token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	}

	err := s.sessions.Create(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return sess, nil
}

// Resolve maps a cookie value to its session. ErrInvalidSession means the
// browser has no usable session; any other error means the store could not
// answer.
func (s *SessionService) Resolve(ctx context.Context, cookie string) (*model.Session, error) {
	claims, err := s.VerifyJWT(cookie)
	if err != nil {
		return nil, ErrInvalidSession
	}

	id, _ := claims["session_id"].(string)
	if id == "" {
		return nil, ErrInvalidSession
	}

	sess, err := s.sessions.ByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// End destroys the session. It is used for logout and when the backend
// rejects the session's token.
func (s *SessionService) End(ctx context.Context, sess *model.Session) error {
	if sess == nil {
		return nil
	}
	return s.sessions.Delete(ctx, sess.ID)
}

// PurgeExpired removes stale sessions and reports how many were deleted.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

func (s *SessionService) GenerateJWT(sess *model.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sess.ID,
		"sub":        sess.UserID,
		"exp":        sess.ExpiresAt.Unix(),
		"iat":        sess.CreatedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *SessionService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(s.secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// SetCookie signs sess and stores it in the session cookie.
func (s *SessionService) SetCookie(w http.ResponseWriter, sess *model.Session) error {
	token, err := s.GenerateJWT(sess)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  sess.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *SessionService) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
