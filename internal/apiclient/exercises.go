package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/optifit/web/internal/model"
)

func (c *Client) Exercises(ctx context.Context, sess *model.Session, f model.ExerciseFilter) ([]model.Exercise, error) {
	query := url.Values{}
	for key, value := range map[string]string{
		"search":      f.Search,
		"muscleGroup": f.MuscleGroup,
		"equipment":   f.Equipment,
		"difficulty":  f.Difficulty,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	data, err := c.authed(ctx, sess, http.MethodGet, "/exercises", query, nil)
	if err != nil {
		return nil, err
	}

	var exercises []model.Exercise
	err = decode(data, "exercises", &exercises)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) Exercise(ctx context.Context, sess *model.Session, id string) (*model.Exercise, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/exercises/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	inner := envelope(data, "exercise")
	if isNull(inner) {
		return nil, ErrNotFound
	}

	var e model.Exercise
	err = decode(inner, "", &e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
