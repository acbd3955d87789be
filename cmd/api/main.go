package main

import (
	"context"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"project-management-api/interfaces/api/handlers"
	"project-management-api/interfaces/api/routes"
	"project-management-api/pkg/di"
	"project-management-api/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger may not be initialised yet
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	h := handlers.NewHandlers(container.GetHandlerServices())
	app := routes.NewApp(cfg, h)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"api": func(ctx context.Context) error {
				logger.Info("Gracefully shutting down...")
				if err := app.ShutdownWithContext(ctx); err != nil {
					logger.Error("Error shutting down HTTP server", "error", err)
				}
				return container.Cleanup()
			},
		},
	)

	exitCode := <-wait
	logger.Info("Shutdown complete", "exit_code", exitCode)
	os.Exit(exitCode)
}
