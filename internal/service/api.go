package service

import (
	"context"
	"encoding/json"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
)

// The interfaces below are the slices of *apiclient.Client each service
// depends on.

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResult, error)
	Register(ctx context.Context, in apiclient.RegisterInput) (*apiclient.AuthResult, error)
}

type ProfileAPI interface {
	Profile(ctx context.Context, sess *model.Session) (*model.Profile, error)
	SaveProfile(ctx context.Context, sess *model.Session, p *model.Profile) (*model.Profile, error)
}

type PlanAPI interface {
	ActivePlan(ctx context.Context, sess *model.Session, kind plan.Kind) (json.RawMessage, error)
	GeneratePlan(ctx context.Context, sess *model.Session, kind plan.Kind) (*apiclient.GeneratedPlan, error)
}

type ExerciseAPI interface {
	Exercises(ctx context.Context, sess *model.Session, f model.ExerciseFilter) ([]model.Exercise, error)
	Exercise(ctx context.Context, sess *model.Session, id string) (*model.Exercise, error)
}

type ProgressAPI interface {
	LogExercise(ctx context.Context, sess *model.Session, entry model.ExerciseLog) (*model.LogResult, error)
	ProgressSummary(ctx context.Context, sess *model.Session) (*model.ProgressSummary, error)
	Metrics(ctx context.Context, sess *model.Session) ([]model.Metric, error)
	AddMetric(ctx context.Context, sess *model.Session, m model.Metric) error
	Stats(ctx context.Context, sess *model.Session) (*model.Stats, error)
	WorkoutLogs(ctx context.Context, sess *model.Session) ([]model.WorkoutLog, error)
	LogWorkout(ctx context.Context, sess *model.Session, log model.WorkoutLog) error
	ExerciseHistory(ctx context.Context, sess *model.Session, exerciseName string) ([]model.ExerciseLog, error)
	Leaderboard(ctx context.Context, sess *model.Session, exercise string, limit int) ([]model.LeaderboardEntry, error)
}

type ChatAPI interface {
	Chat(ctx context.Context, sess *model.Session, req model.ChatRequest) (*model.ChatReply, error)
}

var (
	_ AuthAPI     = (*apiclient.Client)(nil)
	_ ProfileAPI  = (*apiclient.Client)(nil)
	_ PlanAPI     = (*apiclient.Client)(nil)
	_ ExerciseAPI = (*apiclient.Client)(nil)
	_ ProgressAPI = (*apiclient.Client)(nil)
	_ ChatAPI     = (*apiclient.Client)(nil)
)
