package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/optifit/web/internal/plan"
)

var ErrSnapshotNotFound = errors.New("plan snapshot not found")

// PlanSnapshot is the last plan payload seen for a user, kept so pages can
// still render when the backend is unreachable.
type PlanSnapshot struct {
	UserID    string          `db:"user_id"`
	Kind      plan.Kind       `db:"kind"`
	Payload   json.RawMessage `db:"payload"`
	FetchedAt time.Time       `db:"fetched_at"`
}

type PlanSnapshotRepository interface {
	Upsert(ctx context.Context, snap *PlanSnapshot) error
	Get(ctx context.Context, userID string, kind plan.Kind) (*PlanSnapshot, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type planSnapshotRepository struct {
	db *sqlx.DB
}

func NewPlanSnapshotRepository(db *sqlx.DB) PlanSnapshotRepository {
	return &planSnapshotRepository{db: db}
}

func (r *planSnapshotRepository) Upsert(ctx context.Context, snap *PlanSnapshot) error {
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}

	query := `
		INSERT INTO plan_snapshots (user_id, kind, payload, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, kind) DO UPDATE
		SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`
	_, err := r.db.ExecContext(ctx, query, snap.UserID, string(snap.Kind), string(snap.Payload), snap.FetchedAt.UTC())
	return err
}

func (r *planSnapshotRepository) Get(ctx context.Context, userID string, kind plan.Kind) (*PlanSnapshot, error) {
	var row struct {
		UserID    string    `db:"user_id"`
		Kind      string    `db:"kind"`
		Payload   string    `db:"payload"`
		FetchedAt time.Time `db:"fetched_at"`
	}
	query := `SELECT user_id, kind, payload, fetched_at FROM plan_snapshots WHERE user_id = $1 AND kind = $2`

	err := r.db.GetContext(ctx, &row, query, userID, string(kind))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	return &PlanSnapshot{
		UserID:    row.UserID,
		Kind:      plan.Kind(row.Kind),
		Payload:   json.RawMessage(row.Payload),
		FetchedAt: row.FetchedAt,
	}, nil
}

func (r *planSnapshotRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_snapshots WHERE user_id = $1`, userID)
	return err
}
