package validation

import (
	"errors"
	"slices"

	"github.com/optifit/web/internal/model"
)

var (
	genders    = []string{model.GenderMale, model.GenderFemale, model.GenderOther}
	levels     = []string{model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced}
	goals      = []string{model.GoalWeightLoss, model.GoalMuscleGain, model.GoalMaintain, model.GoalEndurance}
	equipments = []string{model.EquipmentGym, model.EquipmentHome, model.EquipmentBodyweight}
	diets      = []string{model.DietVegetarian, model.DietNonVegetarian, model.DietVegan}
)

// ValidateProfile checks the onboarding form. Blank measurements are
// allowed; the ones that are present must be plausible.
func ValidateProfile(p *model.Profile) error {
	if p == nil {
		return Error("profile is required")
	}

	var errs []error
	errs = append(errs,
		inRange("age", p.Age, 10, 120),
		inRange("height", p.Height, 50, 272),
		inRange("weight", p.Weight, 20, 500),
		inRange("workout days per week", p.WorkoutDaysPerWeek, 1, 7),
		inRange("session duration", p.SessionDuration, 10, 300),
		oneOf("gender", p.Gender, genders),
		oneOf("fitness level", p.FitnessLevel, levels),
		oneOf("fitness goal", p.FitnessGoal, goals),
		oneOf("available equipment", p.AvailableEquipment, equipments),
		oneOf("dietary preference", p.DietaryPreference, diets),
	)
	if len(p.Injuries) > 500 {
		errs = append(errs, Error("injuries is too long (max 500 characters)"))
	}

	return errors.Join(errs...)
}

func inRange(field string, n model.Number, lo, hi float64) error {
	if n == 0 {
		return nil
	}
	if float64(n) < lo || float64(n) > hi {
		return invalidf("%s must be between %v and %v", field, lo, hi)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return invalidf("invalid %s: %q", field, value)
}
