// Package commands holds the menuctl operator commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"menuboard/config"
	"menuboard/internal/errors"
	logs "menuboard/internal/infra/log"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "menuboard-ctl",
	Short: "Operator tasks for the menu board service",
	Long: `menuctl runs one-off operator tasks against the configured store.

Configuration is read the same way the server reads it: config/config.yaml,
overridden by environment variables and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// environment is what every command loads before doing work.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnvironment() (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger}, nil
}

// openPostgres connects to the primary configured under postgres.
func (e *environment) openPostgres() (*gorm.DB, error) {
	if e.cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(e.cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
