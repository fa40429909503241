package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/smartschool/backend/internal/pkg/logger"
	"github.com/smartschool/backend/internal/server"
)

func main() {
	// Values already present in the environment win over .env entries.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
