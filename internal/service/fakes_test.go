package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/repository"
)

var testSession = &model.Session{ID: "s1", UserID: "u1", Token: "tok"}

// fakeAPI implements every backend interface. Unset funcs return zero
// values.
type fakeAPI struct {
	mu sync.Mutex

	login    func(email, password string) (*apiclient.AuthResult, error)
	register func(in apiclient.RegisterInput) (*apiclient.AuthResult, error)

	profile     func(ctx context.Context) (*model.Profile, error)
	saveProfile func(p *model.Profile) (*model.Profile, error)

	activePlan   func(kind plan.Kind) (json.RawMessage, error)
	generatePlan func(kind plan.Kind) (*apiclient.GeneratedPlan, error)

	exercises func(f model.ExerciseFilter) ([]model.Exercise, error)
	exercise  func(id string) (*model.Exercise, error)

	stats       func() (*model.Stats, error)
	summary     func() (*model.ProgressSummary, error)
	metrics     func() ([]model.Metric, error)
	logExercise func(entry model.ExerciseLog) (*model.LogResult, error)
	logWorkout  func(log model.WorkoutLog) error

	chat func(req model.ChatRequest) (*model.ChatReply, error)

	loggedExercises []model.ExerciseLog
	loggedWorkouts  []model.WorkoutLog
	addedMetrics    []model.Metric
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*apiclient.AuthResult, error) {
	return f.login(email, password)
}

func (f *fakeAPI) Register(_ context.Context, in apiclient.RegisterInput) (*apiclient.AuthResult, error) {
	return f.register(in)
}

func (f *fakeAPI) Profile(ctx context.Context, _ *model.Session) (*model.Profile, error) {
	return f.profile(ctx)
}

func (f *fakeAPI) SaveProfile(_ context.Context, _ *model.Session, p *model.Profile) (*model.Profile, error) {
	if f.saveProfile == nil {
		return p, nil
	}
	return f.saveProfile(p)
}

func (f *fakeAPI) ActivePlan(_ context.Context, _ *model.Session, kind plan.Kind) (json.RawMessage, error) {
	if f.activePlan == nil {
		return nil, nil
	}
	return f.activePlan(kind)
}

func (f *fakeAPI) GeneratePlan(_ context.Context, _ *model.Session, kind plan.Kind) (*apiclient.GeneratedPlan, error) {
	return f.generatePlan(kind)
}

func (f *fakeAPI) Exercises(_ context.Context, _ *model.Session, filter model.ExerciseFilter) ([]model.Exercise, error) {
	return f.exercises(filter)
}

func (f *fakeAPI) Exercise(_ context.Context, _ *model.Session, id string) (*model.Exercise, error) {
	return f.exercise(id)
}

func (f *fakeAPI) LogExercise(_ context.Context, _ *model.Session, entry model.ExerciseLog) (*model.LogResult, error) {
	f.mu.Lock()
	f.loggedExercises = append(f.loggedExercises, entry)
	f.mu.Unlock()
	if f.logExercise == nil {
		return &model.LogResult{}, nil
	}
	return f.logExercise(entry)
}

func (f *fakeAPI) ProgressSummary(context.Context, *model.Session) (*model.ProgressSummary, error) {
	if f.summary == nil {
		return &model.ProgressSummary{}, nil
	}
	return f.summary()
}

func (f *fakeAPI) Metrics(context.Context, *model.Session) ([]model.Metric, error) {
	if f.metrics == nil {
		return nil, nil
	}
	return f.metrics()
}

func (f *fakeAPI) AddMetric(_ context.Context, _ *model.Session, m model.Metric) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedMetrics = append(f.addedMetrics, m)
	return nil
}

func (f *fakeAPI) Stats(context.Context, *model.Session) (*model.Stats, error) {
	if f.stats == nil {
		return &model.Stats{}, nil
	}
	return f.stats()
}

func (f *fakeAPI) WorkoutLogs(context.Context, *model.Session) ([]model.WorkoutLog, error) {
	return nil, nil
}

func (f *fakeAPI) LogWorkout(_ context.Context, _ *model.Session, log model.WorkoutLog) error {
	f.mu.Lock()
	f.loggedWorkouts = append(f.loggedWorkouts, log)
	f.mu.Unlock()
	if f.logWorkout == nil {
		return nil
	}
	return f.logWorkout(log)
}

func (f *fakeAPI) ExerciseHistory(context.Context, *model.Session, string) ([]model.ExerciseLog, error) {
	return nil, nil
}

func (f *fakeAPI) Leaderboard(context.Context, *model.Session, string, int) ([]model.LeaderboardEntry, error) {
	return nil, nil
}

func (f *fakeAPI) Chat(_ context.Context, _ *model.Session, req model.ChatRequest) (*model.ChatReply, error) {
	return f.chat(req)
}

type memSessions struct {
	mu   sync.Mutex
	byID map[string]*model.Session
	err  error
}

func newMemSessions() *memSessions {
	return &memSessions{byID: map[string]*model.Session{}}
}

func (m *memSessions) Create(_ context.Context, sess *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess.ID == "" {
		sess.ID = "sess-" + sess.UserID
	}
	copied := *sess
	m.byID[sess.ID] = &copied
	return nil
}

func (m *memSessions) ByID(_ context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	sess, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memSessions) DeleteByUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.byID {
		if sess.UserID == userID {
			delete(m.byID, id)
		}
	}
	return nil
}

func (m *memSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, sess := range m.byID {
		if sess.ExpiresAt.Before(now) {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

type memSnapshots struct {
	mu    sync.Mutex
	snaps map[string]*repository.PlanSnapshot
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{snaps: map[string]*repository.PlanSnapshot{}}
}

func (m *memSnapshots) Upsert(_ context.Context, snap *repository.PlanSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *snap
	m.snaps[snap.UserID+"/"+string(snap.Kind)] = &copied
	return nil
}

func (m *memSnapshots) Get(_ context.Context, userID string, kind plan.Kind) (*repository.PlanSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[userID+"/"+string(kind)]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	return snap, nil
}

func (m *memSnapshots) DeleteByUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, snap := range m.snaps {
		if snap.UserID == userID {
			delete(m.snaps, key)
		}
	}
	return nil
}
