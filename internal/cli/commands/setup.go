// Package commands implements the IslandAtlas subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/atolldata/islandatlas/internal/bundle"
	"github.com/atolldata/islandatlas/internal/cli/config"
	"github.com/atolldata/islandatlas/pkg/core"
)

// ConfigKey is the context key under which the root command stores the
// loaded configuration.
type ConfigKey struct{}

// LoggerKey is the context key under which the root command stores the
// logger.
type LoggerKey struct{}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		BundlePath: config.DefaultBundlePath,
		Port:       config.DefaultPort,
		Output:     config.DefaultOutput,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// loadSnapshot loads the configured bundle and verifies it is usable.
// A bundle that parses but has no islands is a load failure.
func loadSnapshot(cmd *cobra.Command) (*core.Snapshot, error) {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	snap, err := bundle.Load(cfg.BundlePath)
	if err != nil {
		return nil, err
	}
	if !snap.Loaded() {
		return nil, &bundle.LoadError{Path: cfg.BundlePath, Err: bundle.ErrNoIslands}
	}

	logger.Debug("bundle loaded",
		"path", cfg.BundlePath,
		"snapshot", snap.ID,
		"islands", len(snap.Islands),
		"atolls", len(snap.Atolls))
	return snap, nil
}
