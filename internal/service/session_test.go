package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func newSessionService(api *fakeAPI, sessions *memSessions) *SessionService {
	return NewSessionService(api, sessions, testSecret, time.Hour, false)
}

func okLogin(email, _ string) (*apiclient.AuthResult, error) {
	res := &apiclient.AuthResult{Token: "backend-token"}
	res.User.ID = "u1"
	res.User.Email = email
	res.User.Name = "Ada Lovelace"
	return res, nil
}

func TestSessionService_LoginAndResolve(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	svc := newSessionService(&fakeAPI{login: okLogin}, sessions)

	sess, err := svc.Login(ctx, "  Ada@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sess.Email)
	assert.Equal(t, "backend-token", sess.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)

	rec := httptest.NewRecorder()
	require.NoError(t, svc.SetCookie(rec, sess))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	resolved, err := svc.Resolve(ctx, cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)

	require.NoError(t, svc.End(ctx, resolved))
	_, err = svc.Resolve(ctx, cookies[0].Value)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_LoginRejected(t *testing.T) {
	api := &fakeAPI{login: func(string, string) (*apiclient.AuthResult, error) {
		return nil, &apiclient.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	}}
	svc := newSessionService(api, newMemSessions())

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "not-an-email", "pw")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSessionService_LoginTransportFailure(t *testing.T) {
	api := &fakeAPI{login: func(string, string) (*apiclient.AuthResult, error) {
		return nil, errors.New("connection refused")
	}}
	svc := newSessionService(api, newMemSessions())

	_, err := svc.Login(context.Background(), "ada@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionService_Signup(t *testing.T) {
	api := &fakeAPI{register: func(in apiclient.RegisterInput) (*apiclient.AuthResult, error) {
		if in.Email == "taken@example.com" {
			return nil, &apiclient.Error{Status: http.StatusBadRequest, Message: "User already exists"}
		}
		res := &apiclient.AuthResult{Token: "t"}
		res.User.ID = "u2"
		res.User.Email = in.Email
		return res, nil
	}}
	svc := newSessionService(api, newMemSessions())
	ctx := context.Background()

	sess, err := svc.Signup(ctx, SignupInput{Name: " Grace ", Email: "grace@example.com", Password: "tr4ck-squats", ConfirmPassword: "tr4ck-squats"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", sess.Name)
	assert.Equal(t, "u2", sess.UserID)

	_, err = svc.Signup(ctx, SignupInput{Name: "Grace", Email: "grace@example.com", Password: "tr4ck-squats", ConfirmPassword: "other-pass"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.Signup(ctx, SignupInput{Name: "Grace", Email: "taken@example.com", Password: "tr4ck-squats", ConfirmPassword: "tr4ck-squats"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = svc.Signup(ctx, SignupInput{Name: "", Email: "grace@example.com", Password: "tr4ck-squats", ConfirmPassword: "tr4ck-squats"})
	assert.Error(t, err)
}

func TestSessionService_Resolve(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	svc := newSessionService(&fakeAPI{login: okLogin}, sessions)

	_, err := svc.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)

	other := NewSessionService(nil, sessions, "another-secret-of-sufficient-length", time.Hour, false)
	sess, err := svc.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	foreign, err := other.GenerateJWT(sess)
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, foreign)
	assert.ErrorIs(t, err, ErrInvalidSession)

	token, err := svc.GenerateJWT(sess)
	require.NoError(t, err)
	sessions.err = errors.New("database is locked")
	_, err = svc.Resolve(ctx, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	svc := newSessionService(&fakeAPI{login: okLogin}, sessions)

	sess, err := svc.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	token, err := svc.GenerateJWT(sess)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSessionService_ClearCookie(t *testing.T) {
	svc := newSessionService(&fakeAPI{}, newMemSessions())
	rec := httptest.NewRecorder()

	svc.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
