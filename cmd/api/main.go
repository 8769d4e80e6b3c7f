package main

import (
	"os"

	"github.com/yigit/facultyroster/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/facultyroster/internal/server"
)

// @title Faculty Roster API
// @version 1.0
// @description Read-only API over a CSV roster of college instructors and their degrees

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
