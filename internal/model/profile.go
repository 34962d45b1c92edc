package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalMaintain   = "maintain"
	GoalEndurance  = "endurance"

	EquipmentGym        = "gym"
	EquipmentHome       = "home"
	EquipmentBodyweight = "bodyweight"

	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non-vegetarian"
	DietVegan         = "vegan"
)

type Profile struct {
	ID                 string `json:"_id,omitempty"`
	Age                Number `json:"age,omitempty"`
	Height             Number `json:"height,omitempty"`
	Weight             Number `json:"weight,omitempty"`
	Gender             string `json:"gender,omitempty"`
	FitnessLevel       string `json:"fitnessLevel,omitempty"`
	FitnessGoal        string `json:"fitnessGoal,omitempty"`
	Injuries           string `json:"injuries,omitempty"`
	WorkoutDaysPerWeek Number `json:"workoutDaysPerWeek,omitempty"`
	SessionDuration    Number `json:"sessionDuration,omitempty"`
	AvailableEquipment string `json:"availableEquipment,omitempty"`
	DietaryPreference  string `json:"dietaryPreference,omitempty"`

	// onboarded is set when a decoded record had a truthy value in one of
	// the completeness fields, whatever its type.
	onboarded bool
}

var completenessFields = []string{"age", "height", "weight", "fitnessLevel", "fitnessGoal"}

// IsComplete reports whether onboarding has produced anything usable.
// Any one of age, height, weight, fitness level or fitness goal is enough.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.onboarded ||
		p.Age != 0 ||
		p.Height != 0 ||
		p.Weight != 0 ||
		p.FitnessLevel != "" ||
		p.FitnessGoal != ""
}

// DefaultProfile holds the onboarding form defaults.
func DefaultProfile() *Profile {
	return &Profile{
		Gender:             GenderMale,
		FitnessLevel:       LevelBeginner,
		FitnessGoal:        GoalMuscleGain,
		WorkoutDaysPerWeek: 3,
		SessionDuration:    60,
		AvailableEquipment: EquipmentGym,
		DietaryPreference:  DietNonVegetarian,
	}
}

// UnmarshalJSON decodes field by field so that one badly typed value does
// not fail the whole record. Text fields accept numbers and booleans.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*p = Profile{
		ID:                 textField(fields["_id"]),
		Age:                numberField(fields["age"]),
		Height:             numberField(fields["height"]),
		Weight:             numberField(fields["weight"]),
		Gender:             textField(fields["gender"]),
		FitnessLevel:       textField(fields["fitnessLevel"]),
		FitnessGoal:        textField(fields["fitnessGoal"]),
		Injuries:           textField(fields["injuries"]),
		WorkoutDaysPerWeek: numberField(fields["workoutDaysPerWeek"]),
		SessionDuration:    numberField(fields["sessionDuration"]),
		AvailableEquipment: textField(fields["availableEquipment"]),
		DietaryPreference:  textField(fields["dietaryPreference"]),
	}
	if p.ID == "" {
		p.ID = textField(fields["id"])
	}
	for _, key := range completenessFields {
		if truthy(fields[key]) {
			p.onboarded = true
			break
		}
	}
	return nil
}

func numberField(raw json.RawMessage) Number {
	var n Number
	if len(raw) == 0 || n.UnmarshalJSON(raw) != nil {
		return 0
	}
	return n
}

func textField(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return ""
		}
		return s
	case 't', 'f':
		return string(raw)
	case 'n', '{', '[':
		return ""
	default:
		var n json.Number
		if json.Unmarshal(raw, &n) != nil {
			return ""
		}
		return n.String()
	}
}

// truthy applies the loose truthiness the profile records were written
// against: false, 0, "" and null are unset, anything else is set.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		return json.Unmarshal(raw, &s) == nil && s != ""
	default:
		var f float64
		return json.Unmarshal(raw, &f) == nil && f != 0
	}
}

// Number is a profile measurement. The backend sometimes sends numbers as
// strings; empty and non-numeric values decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}

	var f float64
	err := json.Unmarshal(data, &f)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) String() string {
	if n == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) Int() int {
	return int(n)
}

// ParseNumber reads a form value; blank or invalid input is zero.
func ParseNumber(s string) Number {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Number(f)
}
