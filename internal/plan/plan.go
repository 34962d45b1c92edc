// Package plan turns loosely structured workout and diet plans into a single
// shape the views can render.
//
// Plans come from an upstream generation service that does not always honor
// its own schema: the schedule may sit at the top level, under one or two
// wrapper keys, inside a JSON document serialized into a text field, or be
// missing entirely with only prose left. Normalize accepts all of these and
// never fails.
package plan

import (
	"strings"
	"unicode/utf8"
)

type Kind string

const (
	KindWorkout Kind = "workout"
	KindDiet    Kind = "diet"
)

// EnvelopeKey is the key the backend wraps this kind of plan in.
func (k Kind) EnvelopeKey() string {
	if k == KindDiet {
		return "dietPlan"
	}
	return "workoutPlan"
}

func (k Kind) Valid() bool {
	return k == KindWorkout || k == KindDiet
}

// Shape records where the plan content was found.
type Shape int

const (
	// ShapeEmpty means there was nothing to show.
	ShapeEmpty Shape = iota
	// ShapeStructured means the schedule sat on the root object.
	ShapeStructured
	// ShapeWrapped means the schedule sat under plan or workoutPlan/dietPlan.
	ShapeWrapped
	// ShapeEmbedded means the schedule was recovered from JSON inside text.
	ShapeEmbedded
	// ShapeText means only free text survived.
	ShapeText
)

func (s Shape) String() string {
	switch s {
	case ShapeStructured:
		return "structured"
	case ShapeWrapped:
		return "wrapped"
	case ShapeEmbedded:
		return "embedded"
	case ShapeText:
		return "text"
	default:
		return "empty"
	}
}

type Plan struct {
	Kind  Kind
	Shape Shape

	Name              string
	StartDate         string
	Fallback          bool
	ExtractedFromText bool

	// WeeklySchedule is nil when no usable schedule exists, never empty.
	WeeklySchedule []Day

	// Diet only.
	Meals  []Entry
	Macros Macros

	Outline Outline

	SanitizedRaw     string
	SanitizedSummary string
}

type Day struct {
	Label   string
	Focus   string
	Entries []Entry
	// RefersToSummary is set when the day only points the reader at the
	// plan summary instead of listing real entries.
	RefersToSummary bool
}

// Entry is one exercise (workout) or one meal (diet).
type Entry struct {
	Name        string
	MuscleGroup string
	Equipment   string
	Intensity   string
	Notes       string

	Sets   Scalar
	Reps   Scalar
	Rest   Scalar
	Weight Scalar

	Calories Scalar
	Foods    []Food
}

type Food struct {
	Name     string
	Quantity Scalar
	Calories Scalar
}

type Macros struct {
	Calories  Scalar
	Protein   Scalar
	Carbs     Scalar
	Fats      Scalar
	Hydration Scalar
}

func (m Macros) IsZero() bool {
	return m.Calories.IsZero() && m.Protein.IsZero() && m.Carbs.IsZero() &&
		m.Fats.IsZero() && m.Hydration.IsZero()
}

// Outline holds the free-form guidance that accompanies text-only plans.
type Outline struct {
	Progression      string
	RecommendedSplit string
}

func (o Outline) IsZero() bool {
	return o.Progression == "" && o.RecommendedSplit == ""
}

func (p *Plan) HasSchedule() bool {
	return len(p.WeeklySchedule) > 0
}

// IsEmpty reports whether there is nothing at all to render.
func (p *Plan) IsEmpty() bool {
	return p.Shape == ShapeEmpty
}

// Text returns the best display text, preferring the summary.
func (p *Plan) Text() string {
	if p.SanitizedSummary != "" {
		return p.SanitizedSummary
	}
	return p.SanitizedRaw
}

// Preview truncates Text to at most n runes.
func (p *Plan) Preview(n int) string {
	text := p.Text()
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// ExerciseCount counts entries across all days.
func (p *Plan) ExerciseCount() int {
	count := 0
	for _, day := range p.WeeklySchedule {
		count += len(day.Entries)
	}
	return count
}

// Day returns the day whose label matches, case-insensitively.
func (p *Plan) Day(label string) (Day, bool) {
	for _, day := range p.WeeklySchedule {
		if strings.EqualFold(day.Label, label) {
			return day, true
		}
	}
	return Day{}, false
}
