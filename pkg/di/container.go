package di

import (
	"fmt"

	"gorm.io/gorm"

	"project-management-api/application/serviceimpl"
	"project-management-api/domain/repositories"
	"project-management-api/domain/services"
	"project-management-api/infrastructure/persistence"
	"project-management-api/interfaces/api/handlers"
	"project-management-api/pkg/config"
	"project-management-api/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB *gorm.DB

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

// NewContainerWithConfig skips environment loading; used by cmd/migrate and
// tests that build their own configuration.
func NewContainerWithConfig(cfg *config.Config) *Container {
	return &Container{Config: cfg}
}

func (c *Container) Initialize() error {
	if err := c.InitializeDatabase(); err != nil {
		return err
	}

	if err := c.initSchema(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

// InitializeDatabase loads configuration if none was given, sets up logging
// and opens the database. The schema is left untouched.
func (c *Container) InitializeDatabase() error {
	if c.Config == nil {
		if err := c.initConfig(); err != nil {
			return err
		}
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	return c.initInfrastructure()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbCfg := c.Config.Database
	db, err := persistence.NewDatabase(dbCfg)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", dbCfg.Driver)
	return nil
}

func (c *Container) initSchema() error {
	if err := persistence.Migrate(c.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database migrated")
	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = persistence.NewUserRepository(c.DB)
	c.TaskRepository = persistence.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.Expiry)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, nil)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup")

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database connection", "error", err)
				return err
			}
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
	}
}
