package serviceimpl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"project-management-api/domain/repositories"
	"project-management-api/infrastructure/persistence"
	"project-management-api/pkg/config"
)

const testSecret = "test-secret"

type testRepos struct {
	users repositories.UserRepository
	tasks repositories.TaskRepository
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := persistence.NewDatabase(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return testRepos{
		users: persistence.NewUserRepository(db),
		tasks: persistence.NewTaskRepository(db),
	}
}

// fixedClock returns a clock that always reports t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
