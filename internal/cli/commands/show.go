package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atolldata/islandatlas/internal/resolver"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <island-id>",
		Short: "Show everything known about one island",
		Long: `Show the complete aggregate view for an island: geography, both census
vintages with the derived population change, labor force statistics,
households, services, facilities, schools, accommodations, activities,
and linked civil society organizations.

Use --output json to emit the raw view instead of tables.`,
		Example: `  # Show an island by id
  islandatlas show 189

  # Emit the view as JSON
  islandatlas show 189 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
	return cmd
}

func runShow(cmd *cobra.Command, islandID string) error {
	cfg := GetConfig(cmd.Context())

	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	view, err := resolver.Resolve(snap, islandID)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			return fmt.Errorf("island %q not found", islandID)
		}
		return err
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	renderView(cmd.OutOrStdout(), view)
	return nil
}
