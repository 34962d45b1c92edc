package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/optifit/web/internal/model"
)

func (c *Client) LogExercise(ctx context.Context, sess *model.Session, entry model.ExerciseLog) (*model.LogResult, error) {
	data, err := c.authed(ctx, sess, http.MethodPost, "/progress/log", nil, entry)
	if err != nil {
		return nil, err
	}

	var res model.LogResult
	err = decode(data, "", &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ProgressSummary(ctx context.Context, sess *model.Session) (*model.ProgressSummary, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	var summary model.ProgressSummary
	err = decode(data, "", &summary)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Metrics(ctx context.Context, sess *model.Session) ([]model.Metric, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/metrics", nil, nil)
	if err != nil {
		return nil, err
	}

	var metrics []model.Metric
	err = decode(data, "metrics", &metrics)
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func (c *Client) AddMetric(ctx context.Context, sess *model.Session, m model.Metric) error {
	_, err := c.authed(ctx, sess, http.MethodPost, "/progress/metric", nil, m)
	return err
}

func (c *Client) Stats(ctx context.Context, sess *model.Session) (*model.Stats, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	var stats model.Stats
	err = decode(data, "", &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) WorkoutLogs(ctx context.Context, sess *model.Session) ([]model.WorkoutLog, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/workout-logs", nil, nil)
	if err != nil {
		return nil, err
	}

	var logs []model.WorkoutLog
	err = decode(data, "logs", &logs)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) LogWorkout(ctx context.Context, sess *model.Session, log model.WorkoutLog) error {
	_, err := c.authed(ctx, sess, http.MethodPost, "/progress/workout-log", nil, log)
	return err
}

func (c *Client) ExerciseHistory(ctx context.Context, sess *model.Session, exerciseName string) ([]model.ExerciseLog, error) {
	query := url.Values{"exerciseName": {exerciseName}}
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/exercise-history", query, nil)
	if err != nil {
		return nil, err
	}

	var logs []model.ExerciseLog
	err = decode(data, "logs", &logs)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) Leaderboard(ctx context.Context, sess *model.Session, exercise string, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	query := url.Values{
		"exercise": {exercise},
		"limit":    {strconv.Itoa(limit)},
	}
	data, err := c.authed(ctx, sess, http.MethodGet, "/progress/leaderboard", query, nil)
	if err != nil {
		return nil, err
	}

	var entries []model.LeaderboardEntry
	err = decode(data, "leaderboard", &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
