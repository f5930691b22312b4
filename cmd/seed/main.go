// Command seed runs migrations and populates both stores once, then
// exits. Useful for provisioning an environment before the app starts.
package main

import (
	"context"
	"os"

	"todoapp/pkg/di"
	"todoapp/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	ctx := context.Background()
	err := container.RunSeeders(ctx)
	_ = container.Cleanup()

	if err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Seeding completed")
}
