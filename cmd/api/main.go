package main

import (
	"os"

	"github.com/campusdb/registrar/internal/pkg/logger"
	"github.com/campusdb/registrar/internal/server"
)

// @title Registrar API
// @version 1.0
// @description Academic records API: departments, instructors, students, courses, enrollments, grades and department heads.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

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
	os.Exit(0)
}
