package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoapp/pkg/di"
	"todoapp/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	ctx := context.Background()
	if err := container.RunSeeders(ctx); err != nil {
		logger.Error("Seeding failed, aborting startup", "error", err)
		_ = container.Cleanup()
		os.Exit(1)
	}

	logger.Info("Application started",
		"app", container.Config.App.Name,
		"env", container.Config.App.Env,
	)

	waitForShutdown(container)
}

func waitForShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logger.Info("Gracefully shutting down...")

	if err := container.Cleanup(); err != nil {
		logger.Error("Error during cleanup", "error", err)
	}
}
