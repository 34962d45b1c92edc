package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/optifit/web/internal/db"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Init("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })
	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))

	sess := &model.Session{
		UserID:    "u1",
		Email:     "ada@example.com",
		Name:      "Ada Lovelace",
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, sess))
	require.NotEmpty(t, sess.ID)

	got, err := repo.ByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	require.NoError(t, repo.Delete(ctx, sess.ID))
	_, err = repo.ByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))

	expired := &model.Session{UserID: "u1", Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}
	live := &model.Session{UserID: "u1", Token: "new", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, live))

	_, err := repo.ByID(ctx, expired.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	n, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.ByID(ctx, live.ID)
	assert.NoError(t, err)

	require.NoError(t, repo.DeleteByUser(ctx, "u1"))
	_, err = repo.ByID(ctx, live.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPlanSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanSnapshotRepository(newTestDB(t))

	_, err := repo.Get(ctx, "u1", plan.KindWorkout)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	first := &PlanSnapshot{UserID: "u1", Kind: plan.KindWorkout, Payload: json.RawMessage(`{"weeklySchedule":[]}`)}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &PlanSnapshot{UserID: "u1", Kind: plan.KindWorkout, Payload: json.RawMessage(`{"planName":"Strength"}`)}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, "u1", plan.KindWorkout)
	require.NoError(t, err)
	assert.JSONEq(t, `{"planName":"Strength"}`, string(got.Payload))
	assert.Equal(t, plan.KindWorkout, got.Kind)
	assert.False(t, got.FetchedAt.IsZero())

	_, err = repo.Get(ctx, "u1", plan.KindDiet)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, repo.DeleteByUser(ctx, "u1"))
	_, err = repo.Get(ctx, "u1", plan.KindWorkout)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
