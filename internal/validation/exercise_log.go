package validation

import (
	"strings"
	"time"

	"github.com/optifit/web/internal/model"
)

var (
	ErrExerciseNameRequired error = Error("please enter an exercise name")
	ErrWeightOrReps         error = Error("please provide either a weight or number of reps to log this exercise")
)

// ValidateExerciseLog checks a manual log entry and normalizes its name and
// date. A blank date becomes today.
func ValidateExerciseLog(entry *model.ExerciseLog, now time.Time) error {
	entry.ExerciseName = strings.TrimSpace(entry.ExerciseName)
	if entry.ExerciseName == "" {
		return ErrExerciseNameRequired
	}

	if entry.Weight <= 0 && entry.Reps <= 0 {
		return ErrWeightOrReps
	}

	if entry.Weight < 0 || entry.Reps < 0 || entry.Sets < 0 {
		return Error("values must not be negative")
	}

	entry.Date = strings.TrimSpace(entry.Date)
	if entry.Date == "" {
		entry.Date = now.Format(model.DateLayout)
		return nil
	}

	_, err := time.Parse(model.DateLayout, entry.Date)
	if err != nil {
		return Error("date must be in YYYY-MM-DD format")
	}
	return nil
}
