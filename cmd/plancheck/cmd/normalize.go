package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/optifit/web/internal/plan"
	"github.com/spf13/cobra"
)

// normalized is the printed form of a plan.
type normalized struct {
	Kind              plan.Kind   `json:"kind"`
	Shape             string      `json:"shape"`
	Name              string      `json:"name,omitempty"`
	StartDate         string      `json:"startDate,omitempty"`
	Fallback          bool        `json:"fallback,omitempty"`
	ExtractedFromText bool        `json:"extractedFromText,omitempty"`
	Days              []dayOut    `json:"weeklySchedule,omitempty"`
	Meals             []entryOut  `json:"meals,omitempty"`
	Macros            *macrosOut  `json:"macros,omitempty"`
	Outline           *outlineOut `json:"outline,omitempty"`
	Text              string      `json:"text,omitempty"`
}

type macrosOut struct {
	Calories  plan.Scalar `json:"calories,omitempty"`
	Protein   plan.Scalar `json:"protein,omitempty"`
	Carbs     plan.Scalar `json:"carbs,omitempty"`
	Fats      plan.Scalar `json:"fats,omitempty"`
	Hydration plan.Scalar `json:"hydration,omitempty"`
}

type outlineOut struct {
	Progression      string `json:"progressionPlan,omitempty"`
	RecommendedSplit string `json:"recommendedSplit,omitempty"`
}

type dayOut struct {
	Label           string     `json:"day"`
	Focus           string     `json:"focus,omitempty"`
	RefersToSummary bool       `json:"refersToSummary,omitempty"`
	Entries         []entryOut `json:"entries,omitempty"`
}

type entryOut struct {
	Name     string      `json:"name"`
	Sets     plan.Scalar `json:"sets,omitempty"`
	Reps     plan.Scalar `json:"reps,omitempty"`
	Rest     plan.Scalar `json:"rest,omitempty"`
	Weight   plan.Scalar `json:"weight,omitempty"`
	Calories plan.Scalar `json:"calories,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}

func NormalizeCmd() *cobra.Command {
	var kind string

	c := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize a plan payload and print it as JSON",
		Long:  "Reads a raw plan payload from file, or stdin when no file is given, and prints what the views would render.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := plan.Kind(kind)
			if !k.Valid() {
				return fmt.Errorf("unknown plan kind %q (want workout or diet)", kind)
			}

			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(toOutput(plan.Normalize(k, payload)))
		},
	}

	c.Flags().StringVarP(&kind, "kind", "k", string(plan.KindWorkout), "plan kind: workout or diet")
	return c
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return b, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return b, nil
}

func toOutput(p *plan.Plan) normalized {
	out := normalized{
		Kind:              p.Kind,
		Shape:             p.Shape.String(),
		Name:              p.Name,
		StartDate:         p.StartDate,
		Fallback:          p.Fallback,
		ExtractedFromText: p.ExtractedFromText,
		Meals:             entriesOut(p.Meals),
		Text:              p.Text(),
	}
	for _, d := range p.WeeklySchedule {
		out.Days = append(out.Days, dayOut{
			Label:           d.Label,
			Focus:           d.Focus,
			RefersToSummary: d.RefersToSummary,
			Entries:         entriesOut(d.Entries),
		})
	}
	if m := p.Macros; !m.IsZero() {
		out.Macros = &macrosOut{
			Calories:  m.Calories,
			Protein:   m.Protein,
			Carbs:     m.Carbs,
			Fats:      m.Fats,
			Hydration: m.Hydration,
		}
	}
	if o := p.Outline; !o.IsZero() {
		out.Outline = &outlineOut{
			Progression:      o.Progression,
			RecommendedSplit: o.RecommendedSplit,
		}
	}
	return out
}

func entriesOut(entries []plan.Entry) []entryOut {
	var out []entryOut
	for _, e := range entries {
		out = append(out, entryOut{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Rest:     e.Rest,
			Weight:   e.Weight,
			Calories: e.Calories,
			Notes:    e.Notes,
		})
	}
	return out
}
