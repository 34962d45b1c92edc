package handler

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/ctxkeys"
	"github.com/optifit/web/internal/db"
	"github.com/optifit/web/internal/events"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/repository"
	"github.com/optifit/web/internal/service"
	"github.com/optifit/web/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	api       *apiclient.Client
	sessions  *service.SessionService
	repo      repository.SessionRepository
	snapshots repository.PlanSnapshotRepository
}

// newTestEnv points an API client at backend and keeps sessions in an
// in-memory database.
func newTestEnv(t *testing.T, backend http.HandlerFunc) *testEnv {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	conn, err := db.Init("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))

	api := apiclient.NewWithHTTPClient(srv.URL, srv.Client())
	repo := repository.NewSessionRepository(conn)
	return &testEnv{
		api:       api,
		repo:      repo,
		snapshots: repository.NewPlanSnapshotRepository(conn),
		sessions:  service.NewSessionService(api, repo, "test-secret", time.Hour, false),
	}
}

// signedIn stores a session and returns a request carrying it.
func (e *testEnv) signedIn(t *testing.T, method, target string, form url.Values) (*http.Request, *model.Session) {
	t.Helper()
	sess := &model.Session{UserID: "u1", Name: "Ada", Email: "ada@example.com", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, e.repo.Create(context.Background(), sess))

	req := formRequest(method, target, form)
	return req.WithContext(ctxkeys.WithSession(req.Context(), sess)), sess
}

func formRequest(method, target string, form url.Values) *http.Request {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok","user":{"_id":"u1","name":"Ada Lovelace","email":"ada@example.com"}}`))
	})
	h := NewAuthHandler(env.sessions)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest(http.MethodPost, "/login", url.Values{
		"email":    {"Ada@Example.com"},
		"password": {"secret123"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.SessionCookie, cookies[0].Name)

	sess, err := env.sessions.Resolve(context.Background(), cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "tok", sess.Token)
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	h := NewAuthHandler(env.sessions)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest(http.MethodPost, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"wrong"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password.")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_SignupPasswordMismatch(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called")
	})
	h := NewAuthHandler(env.sessions)

	rec := httptest.NewRecorder()
	h.Signup(rec, formRequest(http.MethodPost, "/signup", url.Values{
		"name":             {"Ada Lovelace"},
		"email":            {"ada@example.com"},
		"password":         {"secret123"},
		"confirm_password": {"secret124"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match.")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
}

func TestAuthHandler_Logout(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})
	h := NewAuthHandler(env.sessions)
	req, sess := env.signedIn(t, http.MethodPost, "/logout", nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	_, err := env.repo.ByID(context.Background(), sess.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestChatHandler_PlanUpdated(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"reply":"Swapped squats for lunges.","updatedPlan":{"weeklySchedule":[]}}`))
	})
	bus := events.NewPlanBus()
	var got []events.PlanUpdated
	bus.Subscribe(context.Background(), func(ev events.PlanUpdated) { got = append(got, ev) })

	h := NewChatHandler(service.NewChatService(env.api, bus), env.sessions)
	req, _ := env.signedIn(t, http.MethodPost, "/chat", url.Values{
		"message":      {"No squats please"},
		"contextType":  {"workout"},
		"applyChanges": {"true"},
	})

	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"planUpdated":{"kind":"workout"}}`, rec.Header().Get("HX-Trigger"))
	body := rec.Body.String()
	assert.Contains(t, body, "No squats please")
	assert.Contains(t, body, "Swapped squats for lunges.")
	assert.Contains(t, body, service.ChatPlanUpdated)

	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UserID)
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called")
	})
	h := NewChatHandler(service.NewChatService(env.api, events.NewPlanBus()), env.sessions)
	req, _ := env.signedIn(t, http.MethodPost, "/chat", url.Values{"message": {"   "}})

	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
}

func TestChatHandler_BackendError(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	h := NewChatHandler(service.NewChatService(env.api, events.NewPlanBus()), env.sessions)
	req, _ := env.signedIn(t, http.MethodPost, "/chat", url.Values{"message": {"hi"}})

	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ChatErrorReply)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
}

func TestChatHandler_ExpiredToken(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	h := NewChatHandler(service.NewChatService(env.api, events.NewPlanBus()), env.sessions)
	req, sess := env.signedIn(t, http.MethodPost, "/chat", url.Values{"message": {"hi"}})
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	h.Send(rec, req)

	assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
	_, err := env.repo.ByID(context.Background(), sess.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestPlanHandler_MissingProfile(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workout", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Profile not found"}`))
	})
	h := NewPlanHandler(plan.KindWorkout, service.NewPlanService(env.api, env.snapshots), env.sessions)

	t.Run("htmx refetch", func(t *testing.T) {
		req, _ := env.signedIn(t, http.MethodGet, "/workout-plan", nil)
		req.Header.Set("HX-Request", "true")

		rec := httptest.NewRecorder()
		h.PlanPage(rec, req)

		assert.Equal(t, "/onboarding", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("full page", func(t *testing.T) {
		req, _ := env.signedIn(t, http.MethodGet, "/workout-plan", nil)

		rec := httptest.NewRecorder()
		h.PlanPage(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/onboarding", rec.Header().Get("Location"))
	})
}

func TestEventsHandler_Stream(t *testing.T) {
	bus := events.NewPlanBus()
	h := NewEventsHandler(bus)
	sess := &model.Session{ID: "s1", UserID: "u1"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Stream(w, r.WithContext(ctxkeys.WithSession(r.Context(), sess)))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	assert.Equal(t, ": connected", lines.Text())

	// Subscribed before the first byte was flushed.
	bus.Publish(events.PlanUpdated{UserID: "someone-else", Kind: "diet"})
	bus.Publish(events.PlanUpdated{UserID: "u1", Kind: "workout"})

	var got []string
	for lines.Scan() {
		if lines.Text() == "" {
			if len(got) > 0 {
				break
			}
			continue
		}
		got = append(got, lines.Text())
	}
	assert.Equal(t, []string{"event: plan-updated", `data: {"kind":"workout"}`}, got)
}

func TestHomeHandler(t *testing.T) {
	h := NewHomeHandler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.NotFoundPage(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("loading fragment polls the same path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=1", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		h.LoadingPage(rec, req)

		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), `hx-get="/dashboard?tab=1"`)
		assert.NotContains(t, rec.Body.String(), "<html")
	})
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Name is required", userMessage(validation.Error("name is required"), "fallback"))
	assert.Equal(t, "fallback", userMessage(assert.AnError, "fallback"))
}
