// Command migrate applies the database schema without starting the API.
// With -reset it drops the tables first, wiping all users and tasks.
package main

import (
	"flag"
	"fmt"
	"os"

	"project-management-api/infrastructure/persistence"
	"project-management-api/pkg/config"
	"project-management-api/pkg/di"
	"project-management-api/pkg/logger"
)

var resetTables = []string{"tasks", "users"}

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	reset := fs.Bool("reset", false, "Drop all tables before migrating (destroys data)")
	_ = fs.Parse(os.Args[1:])

	if err := run(*reset); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(reset bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	// progress goes to the terminal, whatever the API logs to
	cfg.Log.Output = "stdout"

	container := di.NewContainerWithConfig(cfg)
	if err := container.InitializeDatabase(); err != nil {
		return err
	}
	defer container.Cleanup()

	db := container.DB
	if reset {
		for _, table := range resetTables {
			if err := db.Migrator().DropTable(table); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
			logger.Info("Dropped table", "table", table)
		}
	}

	if err := persistence.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Schema is up to date", "driver", cfg.Database.Driver)
	return nil
}
