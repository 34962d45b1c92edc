package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/model"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Filter choices offered by the exercise library.
var (
	MuscleGroups = []string{"chest", "back", "legs", "shoulders", "arms", "core"}
	Difficulties = []string{"easy", "medium", "hard"}
	Equipment    = []string{"barbell", "dumbbell", "machine", "cable", "bodyweight", "kettlebell", "bands"}
)

type ExerciseService struct {
	api ExerciseAPI
}

func NewExerciseService(api ExerciseAPI) *ExerciseService {
	return &ExerciseService{api: api}
}

func (s *ExerciseService) List(ctx context.Context, sess *model.Session, f model.ExerciseFilter) ([]model.Exercise, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.MuscleGroup = strings.TrimSpace(f.MuscleGroup)
	f.Equipment = strings.TrimSpace(f.Equipment)
	f.Difficulty = strings.TrimSpace(f.Difficulty)

	exercises, err := s.api.Exercises(ctx, sess, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) Get(ctx context.Context, sess *model.Session, id string) (*model.Exercise, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrExerciseNotFound
	}

	e, err := s.api.Exercise(ctx, sess, id)
	if errors.Is(err, apiclient.ErrNotFound) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return e, nil
}
