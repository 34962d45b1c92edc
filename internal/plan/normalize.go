package plan

import (
	"fmt"
	"regexp"
)

var summaryReference = regexp.MustCompile(`(?i)unstructured|check summary|refer to plan summary|see plan summary|see summary`)

// Normalize converts a plan payload of any supported shape into a Plan.
// It is pure and total: malformed input degrades to a text-only or empty
// plan.
func Normalize(kind Kind, payload []byte) *Plan {
	c := decodePayload(payload)
	for _, r := range rules {
		c = r(kind, c)
	}
	return build(kind, c)
}

func build(kind Kind, c candidate) *Plan {
	p := &Plan{Kind: kind}
	if c.obj == nil {
		return p
	}
	obj := c.obj

	p.Name = firstText(obj, "planName", "title")
	p.StartDate = firstString(obj, "startDate", "createdAt")
	p.Fallback = truthy(obj["fallback"])
	p.ExtractedFromText = truthy(obj["extractedFromText"])
	p.SanitizedRaw = firstText(obj, "raw", "summary", "textPlan")
	p.SanitizedSummary = firstText(obj, "summary", "raw", "textPlan")
	p.Outline = outlineOf(obj)

	schedule, fromRaw := locateSchedule(obj)
	p.WeeklySchedule = buildDays(schedule)

	if kind == KindDiet {
		p.Meals = buildEntries(obj["meals"])
		p.Macros = macrosOf(obj)
	}

	switch {
	case p.HasSchedule() || len(p.Meals) > 0 || !p.Macros.IsZero():
		switch {
		case c.fromText || fromRaw:
			p.Shape = ShapeEmbedded
		case c.depth > 0:
			p.Shape = ShapeWrapped
		default:
			p.Shape = ShapeStructured
		}
	case p.SanitizedRaw != "" || p.SanitizedSummary != "" || !p.Outline.IsZero():
		p.Shape = ShapeText
	default:
		p.Shape = ShapeEmpty
	}

	return p
}

// buildDays keeps object items and text items, which become a day with
// only a label. It returns nil rather than an empty slice when none survive.
func buildDays(items []any) []Day {
	var days []Day
	for _, item := range items {
		var obj map[string]any
		switch t := item.(type) {
		case map[string]any:
			obj = t
		case string:
			if label := Sanitize(t); label != "" {
				days = append(days, Day{Label: label})
			}
			continue
		default:
			continue
		}

		day := Day{
			Label: firstString(obj, "day", "name"),
			Focus: firstText(obj, "focus"),
		}
		if day.Label == "" {
			day.Label = fmt.Sprintf("Day %d", len(days)+1)
		}

		day.Entries = buildEntries(obj["exercises"])
		if len(day.Entries) == 0 {
			day.Entries = buildEntries(obj["meals"])
		}
		if len(day.Entries) > 0 {
			first := day.Entries[0]
			day.RefersToSummary = summaryReference.MatchString(first.Name) ||
				summaryReference.MatchString(first.Notes)
		}

		days = append(days, day)
	}
	return days
}

func buildEntries(v any) []Entry {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var entries []Entry
	for _, item := range items {
		switch t := item.(type) {
		case map[string]any:
			entries = append(entries, entryOf(t))
		case string:
			if name := Sanitize(t); name != "" {
				entries = append(entries, Entry{Name: name})
			}
		}
	}
	return entries
}

func entryOf(obj map[string]any) Entry {
	return Entry{
		Name:        firstText(obj, "exerciseName", "mealType", "name"),
		MuscleGroup: firstText(obj, "muscleGroup", "target"),
		Equipment:   firstText(obj, "equipment"),
		Intensity:   firstText(obj, "intensity"),
		Notes:       firstText(obj, "notes"),
		Sets:        firstScalar(obj, "sets", "set"),
		Reps:        firstScalar(obj, "reps", "rep"),
		Rest:        firstScalar(obj, "restTime", "rest"),
		Weight:      firstScalar(obj, "weight"),
		Calories:    firstScalar(obj, "calories", "totalCalories"),
		Foods:       foodsOf(obj["foods"]),
	}
}

func foodsOf(v any) []Food {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var foods []Food
	for _, item := range items {
		switch t := item.(type) {
		case map[string]any:
			foods = append(foods, Food{
				Name:     firstText(t, "name", "item"),
				Quantity: firstScalar(t, "quantity", "amount"),
				Calories: firstScalar(t, "calories"),
			})
		case string:
			if name := Sanitize(t); name != "" {
				foods = append(foods, Food{Name: name})
			}
		}
	}
	return foods
}

func macrosOf(obj map[string]any) Macros {
	macros := child(obj, "macros")
	pick := func(top []string, nested string) Scalar {
		if s := firstScalar(obj, top...); s != "" {
			return s
		}
		return firstScalar(macros, nested)
	}

	return Macros{
		Calories:  pick([]string{"dailyCalories", "calories"}, "calories"),
		Protein:   pick([]string{"protein"}, "protein"),
		Carbs:     pick([]string{"carbs"}, "carbs"),
		Fats:      pick([]string{"fats"}, "fats"),
		Hydration: pick([]string{"hydration", "water"}, "hydration"),
	}
}

func outlineOf(obj map[string]any) Outline {
	o := Outline{
		Progression:      firstText(obj, "progressionPlan"),
		RecommendedSplit: firstText(child(obj, "weeklySplit"), "recommended"),
	}
	if o.RecommendedSplit == "" {
		o.RecommendedSplit = firstText(child(obj, "weekly_split"), "recommended")
	}

	if embedded, ok := rawObject(obj); ok {
		if o.Progression == "" {
			o.Progression = firstText(embedded, "progressionPlan")
		}
		if o.RecommendedSplit == "" {
			o.RecommendedSplit = firstText(child(embedded, "weeklySplit"), "recommended")
		}
	}
	return o
}
