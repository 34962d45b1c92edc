package main

import (
	"os"

	"github.com/optifit/web/cmd/plancheck/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "plancheck",
		Short:        "Inspect plan payloads and manage the local store",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.NormalizeCmd())
	rootCmd.AddCommand(cmd.SanitizeCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
