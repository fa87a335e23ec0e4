package commands

import (
	"context"
	"fmt"

	"menuboard/internal/domain/lifecycle"
	"menuboard/internal/errors"
	"menuboard/internal/infra/persistence/postgres/migrations"

	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema to PostgreSQL",
	Long: `Apply every embedded migration in file-name order.

Migrations are idempotent, so running this against an up-to-date database is safe.

Examples:
  menuctl migrate            # Apply the schema
  menuctl migrate --dry-run  # List the migrations without applying them`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "List migrations without applying them")
}

func runMigrate(cmd *cobra.Command) error {
	names, err := migrations.Names()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if migrateDryRun {
		for _, name := range names {
			fmt.Fprintln(out, name)
		}

		return nil
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	db, err := env.openPostgres()
	if err != nil {
		return err
	}
	defer closeDB(db)

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := migrations.Apply(ctx, sqlDB); err != nil {
		return err
	}

	fmt.Fprintf(out, "Applied %d migrations\n", len(names))

	return nil
}
