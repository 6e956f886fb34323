package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atolldata/islandatlas/internal/bundle"
	"github.com/atolldata/islandatlas/internal/store"
	"github.com/atolldata/islandatlas/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the IslandAtlas JSON API server",
		Long: `Start a local HTTP server exposing the island data as a JSON API.

Endpoints:
  GET /api/atolls                    all atolls, sorted by name
  GET /api/atolls/{id}/islands       islands of one atoll, sorted by name
  GET /api/islands/{id}              full aggregate view for one island
  GET /api/search?q=                 island search (min 2 characters)
  GET /api/status                    snapshot identity and collection counts

If the bundle fails to load the server still starts and answers 503 with
the failure cause until a successful reload.`,
		Example: `  # Serve on the default port
  islandatlas serve

  # Custom port, reload when the bundle file changes
  islandatlas serve --port 3000 --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the bundle when the file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}
	watch := cfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	st := store.New()
	snap, err := bundle.Load(cfg.BundlePath)
	switch {
	case err != nil:
		// Non-fatal: the server starts unready and reports the cause.
		st.RecordFailure(err)
		logger.Error("bundle load failed", "path", cfg.BundlePath, "error", err)
	case !snap.Loaded():
		st.Publish(snap)
		st.RecordFailure(&bundle.LoadError{Path: cfg.BundlePath, Err: bundle.ErrNoIslands})
		logger.Error("bundle has no islands", "path", cfg.BundlePath)
	default:
		st.Publish(snap)
		logger.Info("bundle loaded",
			"snapshot", snap.ID,
			"islands", len(snap.Islands),
			"atolls", len(snap.Atolls))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := ui.NewServer(ui.Config{
		Store:      st,
		Port:       port,
		Watch:      watch,
		BundlePath: cfg.BundlePath,
		Logger:     logger,
	})
	return srv.Serve(ctx)
}
