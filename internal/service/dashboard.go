package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"golang.org/x/sync/errgroup"
)

type StatsAPI interface {
	Stats(ctx context.Context, sess *model.Session) (*model.Stats, error)
}

// Dashboard is the overview page's data. A nil plan means that plan could
// not be loaded; an empty one means the user has not generated it yet.
type Dashboard struct {
	Workout *PlanView
	Diet    *PlanView
	Stats   model.Stats
}

type DashboardService struct {
	plans   *PlanService
	stats   StatsAPI
	timeout time.Duration
}

func NewDashboardService(plans *PlanService, stats StatsAPI, timeout time.Duration) *DashboardService {
	return &DashboardService{
		plans:   plans,
		stats:   stats,
		timeout: timeout,
	}
}

// Load runs the three dashboard fetches concurrently. Each one falls back on
// its own; only an expired backend token fails the whole load.
func (s *DashboardService) Load(ctx context.Context, sess *model.Session) (*Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d := &Dashboard{}
	var g errgroup.Group

	g.Go(func() error {
		view, err := s.plans.Active(ctx, sess, plan.KindWorkout)
		if err != nil {
			return fallback("workout plan", sess, err)
		}
		d.Workout = view
		return nil
	})

	g.Go(func() error {
		view, err := s.plans.Active(ctx, sess, plan.KindDiet)
		if err != nil {
			return fallback("diet plan", sess, err)
		}
		d.Diet = view
		return nil
	})

	g.Go(func() error {
		stats, err := s.stats.Stats(ctx, sess)
		if err != nil {
			return fallback("stats", sess, err)
		}
		if stats != nil {
			d.Stats = *stats
		}
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return d, nil
}

func fallback(what string, sess *model.Session, err error) error {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return err
	}
	slog.Warn("dashboard fetch failed", "what", what, "error", err, "user_id", sess.UserID)
	return nil
}
