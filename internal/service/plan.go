package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/events"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
	"github.com/optifit/web/internal/repository"
)

// PlanView is a normalized plan plus where it came from.
type PlanView struct {
	Plan *plan.Plan
	// Stale is set when the backend could not be reached and the last
	// stored snapshot is shown instead.
	Stale     bool
	FetchedAt time.Time
}

type GenerateResult struct {
	View    *PlanView
	Message string
}

type PlanService struct {
	api       PlanAPI
	snapshots repository.PlanSnapshotRepository
	now       func() time.Time
}

func NewPlanService(api PlanAPI, snapshots repository.PlanSnapshotRepository) *PlanService {
	return &PlanService{
		api:       api,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Active returns the user's current plan of the given kind. A user without
// a plan gets an empty plan, not an error.
func (s *PlanService) Active(ctx context.Context, sess *model.Session, kind plan.Kind) (*PlanView, error) {
	raw, err := s.api.ActivePlan(ctx, sess, kind)
	if errors.Is(err, apiclient.ErrNotFound) && !errors.Is(err, apiclient.ErrProfileNotFound) {
		return &PlanView{Plan: plan.Normalize(kind, nil)}, nil
	}
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) || errors.Is(err, apiclient.ErrProfileNotFound) {
			return nil, err
		}
		return s.fromSnapshot(ctx, sess, kind, err)
	}

	s.remember(ctx, sess.UserID, kind, raw)
	return &PlanView{Plan: plan.Normalize(kind, raw), FetchedAt: s.now()}, nil
}

func (s *PlanService) fromSnapshot(ctx context.Context, sess *model.Session, kind plan.Kind, cause error) (*PlanView, error) {
	snap, err := s.snapshots.Get(ctx, sess.UserID, kind)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			slog.Error("failed to read plan snapshot", "error", err, "user_id", sess.UserID, "kind", kind)
		}
		return nil, fmt.Errorf("failed to fetch %s plan: %w", kind, cause)
	}

	slog.Warn("serving stale plan", "error", cause, "user_id", sess.UserID, "kind", kind)
	return &PlanView{
		Plan:      plan.Normalize(kind, snap.Payload),
		Stale:     true,
		FetchedAt: snap.FetchedAt,
	}, nil
}

// Generate asks the backend for a new plan. When the reply does not carry
// the plan, the latest plan is fetched instead.
func (s *PlanService) Generate(ctx context.Context, sess *model.Session, kind plan.Kind) (*GenerateResult, error) {
	gen, err := s.api.GeneratePlan(ctx, sess, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s plan: %w", kind, err)
	}

	raw := gen.Plan
	if raw == nil {
		slog.Warn("generate returned no plan, fetching latest", "user_id", sess.UserID, "kind", kind)
		raw, err = s.api.ActivePlan(ctx, sess, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch generated %s plan: %w", kind, err)
		}
	}

	s.remember(ctx, sess.UserID, kind, raw)
	p := plan.Normalize(kind, raw)
	return &GenerateResult{
		View:    &PlanView{Plan: p, FetchedAt: s.now()},
		Message: generatedMessage(kind, p),
	}, nil
}

func generatedMessage(kind plan.Kind, p *plan.Plan) string {
	switch {
	case p.Fallback:
		return fmt.Sprintf("New %s plan generated (auto-estimated fallback).", kind)
	case p.ExtractedFromText:
		return fmt.Sprintf("New %s plan generated (auto-extracted from AI text).", kind)
	default:
		return fmt.Sprintf("New %s plan generated successfully!", kind)
	}
}

// OnPlanUpdated stores plans changed elsewhere, e.g. by the assistant.
func (s *PlanService) OnPlanUpdated(ev events.PlanUpdated) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.remember(ctx, ev.UserID, ev.Kind, ev.Plan)
}

func (s *PlanService) remember(ctx context.Context, userID string, kind plan.Kind, raw json.RawMessage) {
	if userID == "" || len(raw) == 0 {
		return
	}
	err := s.snapshots.Upsert(ctx, &repository.PlanSnapshot{
		UserID:    userID,
		Kind:      kind,
		Payload:   raw,
		FetchedAt: s.now(),
	})
	if err != nil {
		slog.Error("failed to store plan snapshot", "error", err, "user_id", userID, "kind", kind)
	}
}
