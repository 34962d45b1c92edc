package cmd

import (
	"fmt"

	"github.com/optifit/web/internal/plan"
	"github.com/spf13/cobra"
)

func SanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Strip markup tags and class attributes from generated text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), plan.Sanitize(string(text)))
			return err
		},
	}
}
