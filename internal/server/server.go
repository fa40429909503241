// Package server wires the HTTP server lifecycle: startup, static file
// serving and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/smartschool/backend/internal/bootstrap"
	"github.com/smartschool/backend/internal/config"
	"github.com/smartschool/backend/internal/db"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config *config.Config
	router *gin.Engine
	mongo  *db.Mongo
	logger zerolog.Logger
}

// NewServer creates and initializes a new server instance
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	mongo, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, mongo, lgr)
	if err != nil {
		_ = mongo.Close(context.Background())
		return nil, fmt.Errorf("failed to build dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	s := &Server{
		config: cfg,
		router: router,
		mongo:  mongo,
		logger: lgr,
	}
	s.setupStaticFileServing()

	return s, nil
}

// setupStaticFileServing exposes locally stored uploads over HTTP. With the
// Cloudinary driver files live on the CDN, so there is nothing to serve.
func (s *Server) setupStaticFileServing() {
	if s.config.Storage.Driver != config.StorageDriverLocal {
		return
	}
	s.router.Static(s.config.Storage.BaseURL, s.config.Storage.LocalPath)
	s.logger.Info().
		Str("baseURL", s.config.Storage.BaseURL).
		Str("path", s.config.Storage.LocalPath).
		Msg("Serving uploaded files from local disk")
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	s.Shutdown()
	s.logger.Info().Msg("Server exited gracefully")
	return nil
}

// Shutdown releases server resources
func (s *Server) Shutdown() {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.mongo.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Error closing database connection")
		}
	}
}
