// Package ui provides the local HTTP API server for IslandAtlas.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/atolldata/islandatlas/internal/bundle"
	"github.com/atolldata/islandatlas/internal/store"
	"github.com/atolldata/islandatlas/internal/ui/router"
)

// Server serves the JSON API over the current snapshot.
type Server struct {
	store      *store.Store
	port       int
	watch      bool
	bundlePath string
	logger     *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Store      *store.Store
	Port       int
	Watch      bool
	BundlePath string
	Logger     *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	return &Server{
		store:      cfg.Store,
		port:       cfg.Port,
		watch:      cfg.Watch,
		bundlePath: cfg.BundlePath,
		logger:     cfg.Logger,
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.store)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Keep the published snapshot in step with the bundle file
	if s.watch {
		eg.Go(func() error {
			return bundle.Watch(egctx, s.bundlePath, s.store, s.logger)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
