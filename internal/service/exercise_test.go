package service

import (
	"context"
	"testing"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseService(t *testing.T) {
	var gotFilter model.ExerciseFilter
	api := &fakeAPI{
		exercises: func(f model.ExerciseFilter) ([]model.Exercise, error) {
			gotFilter = f
			return []model.Exercise{{ID: "e1", Name: "Plank"}}, nil
		},
		exercise: func(id string) (*model.Exercise, error) {
			if id == "e1" {
				return &model.Exercise{ID: "e1", Name: "Plank"}, nil
			}
			return nil, &apiclient.Error{Status: 404}
		},
	}
	svc := NewExerciseService(api)
	ctx := context.Background()

	list, err := svc.List(ctx, testSession, model.ExerciseFilter{Search: "  plank ", MuscleGroup: "core"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, model.ExerciseFilter{Search: "plank", MuscleGroup: "core"}, gotFilter)

	e, err := svc.Get(ctx, testSession, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Plank", e.Name)

	_, err = svc.Get(ctx, testSession, "nope")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.Get(ctx, testSession, " ")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
