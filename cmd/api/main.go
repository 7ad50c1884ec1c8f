package main

import (
	"os"

	"github.com/yigit/hrmslite/internal/pkg/logger"
	"github.com/yigit/hrmslite/internal/server"
)

// @title HRMS Lite API
// @version 1.0
// @description Employee records and daily attendance tracking

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
