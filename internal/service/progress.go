package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/validation"
	"golang.org/x/sync/errgroup"
)

const calendarDays = 30

var (
	ErrInvalidWeight error = validation.Error("weight must be a positive number")
	ErrNoExercises         = errors.New("no exercises found for this day")
)

type ProgressPage struct {
	Stats       model.Stats
	Summary     model.ProgressSummary
	Metrics     []model.Metric
	WorkoutLogs []model.WorkoutLog
	Calendar    []model.CalendarDay
}

// SessionEntry is what the user recorded for one exercise of a workout
// session. Zero values fall back to the plan's prescription.
type SessionEntry struct {
	Completed bool
	Sets      int
	Reps      int
	Weight    float64
	Notes     string
}

type ProgressService struct {
	api ProgressAPI
	now func() time.Time
}

func NewProgressService(api ProgressAPI) *ProgressService {
	return &ProgressService{
		api: api,
		now: time.Now,
	}
}

// Load gathers everything the progress page shows. Sections that fail to
// load are left empty.
func (s *ProgressService) Load(ctx context.Context, sess *model.Session) (*ProgressPage, error) {
	page := &ProgressPage{}
	var g errgroup.Group

	g.Go(func() error {
		stats, err := s.api.Stats(ctx, sess)
		if err != nil {
			return fallback("progress stats", sess, err)
		}
		if stats != nil {
			page.Stats = *stats
		}
		return nil
	})
	g.Go(func() error {
		summary, err := s.api.ProgressSummary(ctx, sess)
		if err != nil {
			return fallback("progress summary", sess, err)
		}
		if summary != nil {
			page.Summary = *summary
		}
		return nil
	})
	g.Go(func() error {
		metrics, err := s.api.Metrics(ctx, sess)
		if err != nil {
			return fallback("metrics", sess, err)
		}
		page.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		logs, err := s.api.WorkoutLogs(ctx, sess)
		if err != nil {
			return fallback("workout logs", sess, err)
		}
		page.WorkoutLogs = logs
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	page.Calendar = CalendarDays(s.now(), page.Summary.LogsByDate)
	return page, nil
}

// CalendarDays returns the last 30 days ending today, oldest first, marking
// the days that have logged exercises.
func CalendarDays(now time.Time, logsByDate []model.DateLogs) []model.CalendarDay {
	logged := make(map[string]bool, len(logsByDate))
	for _, d := range logsByDate {
		if len(d.Date) >= len(model.DateLayout) {
			logged[d.Date[:len(model.DateLayout)]] = true
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make([]model.CalendarDay, 0, calendarDays)
	for i := calendarDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := date.Format(model.DateLayout)
		days = append(days, model.CalendarDay{
			Date:         key,
			Weekday:      date.Weekday().String()[:3],
			DayOfMonth:   date.Day(),
			IsToday:      i == 0,
			IsWorkoutDay: logged[key],
		})
	}
	return days
}

func (s *ProgressService) AddMetric(ctx context.Context, sess *model.Session, weight float64, notes string) error {
	if weight <= 0 {
		return ErrInvalidWeight
	}

	err := s.api.AddMetric(ctx, sess, model.Metric{
		Weight: weight,
		Notes:  strings.TrimSpace(notes),
		Date:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to add metric: %w", err)
	}
	return nil
}

// LogExercise validates and records a manual entry. The result reports
// whether it set a new personal record.
func (s *ProgressService) LogExercise(ctx context.Context, sess *model.Session, entry model.ExerciseLog) (*model.LogResult, error) {
	err := validation.ValidateExerciseLog(&entry, s.now())
	if err != nil {
		return nil, err
	}

	res, err := s.api.LogExercise(ctx, sess, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to log exercise: %w", err)
	}
	return res, nil
}

func (s *ProgressService) History(ctx context.Context, sess *model.Session, exerciseName string) ([]model.ExerciseLog, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return nil, validation.ErrExerciseNameRequired
	}

	logs, err := s.api.ExerciseHistory(ctx, sess, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise history: %w", err)
	}
	return logs, nil
}

func (s *ProgressService) Leaderboard(ctx context.Context, sess *model.Session, exerciseName string) ([]model.LeaderboardEntry, error) {
	return s.api.Leaderboard(ctx, sess, strings.TrimSpace(exerciseName), 10)
}

// SaveSession records a finished workout for one day of the plan. Each
// completed exercise is logged on its own; those calls may fail without
// aborting the rest. It returns how many exercises were completed.
func (s *ProgressService) SaveSession(ctx context.Context, sess *model.Session, day plan.Day, entries []SessionEntry) (int, error) {
	if len(day.Entries) == 0 {
		return 0, ErrNoExercises
	}

	date := s.now().Format(model.DateLayout)
	var done []model.WorkoutLogEntry
	for i, ex := range day.Entries {
		if i >= len(entries) || !entries[i].Completed {
			continue
		}
		rec := entries[i]

		name := ex.Name
		if name == "" {
			name = "Exercise"
		}
		entry := model.WorkoutLogEntry{
			ExerciseName: name,
			Sets:         firstInt(rec.Sets, ex.Sets),
			Reps:         firstInt(rec.Reps, ex.Reps),
			Weight:       rec.Weight,
			Completed:    true,
			Notes:        strings.TrimSpace(rec.Notes),
		}
		if entry.Notes == "" {
			entry.Notes = ex.Notes
		}
		done = append(done, entry)

		_, err := s.api.LogExercise(ctx, sess, model.ExerciseLog{
			ExerciseName: entry.ExerciseName,
			Sets:         entry.Sets,
			Reps:         entry.Reps,
			Weight:       entry.Weight,
			Notes:        entry.Notes,
			Date:         date,
		})
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return 0, err
		}
		if err != nil {
			slog.Warn("failed to log session exercise", "error", err, "user_id", sess.UserID, "exercise", name)
		}
	}

	if len(done) == 0 {
		return 0, nil
	}

	err := s.api.LogWorkout(ctx, sess, model.WorkoutLog{
		Date:      date,
		Notes:     "Workout session - " + day.Label,
		Completed: true,
		Exercises: done,
	})
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return 0, err
	}
	if err != nil {
		slog.Warn("failed to log workout session", "error", err, "user_id", sess.UserID, "day", day.Label)
	}
	return len(done), nil
}

func firstInt(override int, prescribed plan.Scalar) int {
	if override > 0 {
		return override
	}
	n, _ := prescribed.Int()
	return n
}
