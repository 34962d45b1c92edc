package cmd

import (
	"database/sql"
	"fmt"

	"github.com/optifit/web/internal/config"
	"github.com/optifit/web/internal/db"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back local store migrations",
	}

	c.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(db.RunMigrations)
		},
	})
	c.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(db.MigrateDown)
		},
	})
	return c
}

func withDB(run func(db *sql.DB, driver string) error) error {
	cfg := config.Load()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close(database)

	return run(database.DB, cfg.DBDriver)
}
