// Command seed loads the demonstration dataset into the configured
// database. It applies migrations and the default rows first, so it can
// run against an empty database.
package main

import (
	"context"
	"os"

	"github.com/campushq/studentportal/internal/bootstrap"
	"github.com/campushq/studentportal/internal/pkg/logger"
	"github.com/campushq/studentportal/internal/seed"
)

func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := seed.LoadSampleData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to load sample data")
		os.Exit(1)
	}
}
