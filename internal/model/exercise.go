package model

import "encoding/json"

type Exercise struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PrimaryMuscle   string   `json:"primaryMuscle"`
	MuscleGroups    []string `json:"muscleGroups"`
	Difficulty      string   `json:"difficulty"`
	Equipment       string   `json:"equipment"`
	EquipmentNeeded []string `json:"equipmentNeeded"`
	Instructions    []string `json:"instructions"`
	CommonMistakes  []string `json:"commonMistakes"`
	Tips            []string `json:"tips"`
	Alternatives    []string `json:"alternatives"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	VideoURL        string   `json:"videoUrl"`
}

// UnmarshalJSON accepts both "_id" and "id".
func (e *Exercise) UnmarshalJSON(data []byte) error {
	type alias Exercise
	var raw struct {
		alias
		AltID string `json:"id"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*e = Exercise(raw.alias)
	if e.ID == "" {
		e.ID = raw.AltID
	}
	return nil
}

// EquipmentList merges the two equipment fields the catalog uses.
func (e *Exercise) EquipmentList() []string {
	if len(e.EquipmentNeeded) > 0 {
		return e.EquipmentNeeded
	}
	if e.Equipment != "" {
		return []string{e.Equipment}
	}
	return nil
}

// ExerciseFilter narrows the catalog. Empty fields are not sent.
type ExerciseFilter struct {
	Search      string
	MuscleGroup string
	Equipment   string
	Difficulty  string
}

func (f ExerciseFilter) IsZero() bool {
	return f == ExerciseFilter{}
}
