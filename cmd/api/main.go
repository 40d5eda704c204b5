package main

import (
	"os"

	"github.com/campushq/studentportal/internal/pkg/logger"
	"github.com/campushq/studentportal/internal/server"
)

// @title Student Portal API
// @version 1.0
// @description Backend for the university student portal

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
