package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/atolldata/islandatlas/internal/resolver"
)

// NewAtollsCommand creates the atolls command.
func NewAtollsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "atolls",
		Short: "List all atolls",
		Example: `  # List atolls sorted by name
  islandatlas atolls

  # As JSON
  islandatlas atolls --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}

			atolls := resolver.Atolls(snap)
			if GetConfig(cmd.Context()).Output == "json" {
				return writeIndented(cmd, atolls)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Abbreviation"})
			for _, a := range atolls {
				t.AppendRow(table.Row{a.ID, a.Name, a.Abbreviation})
			}
			t.Render()
			return nil
		},
	}
}

// NewIslandsCommand creates the islands command.
func NewIslandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "islands <atoll-id>",
		Short: "List the islands of one atoll",
		Args:  cobra.ExactArgs(1),
		Example: `  # List islands of an atoll, sorted by name
  islandatlas islands K`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}

			islands := resolver.IslandsInAtoll(snap, args[0])
			if GetConfig(cmd.Context()).Output == "json" {
				return writeIndented(cmd, islands)
			}

			if len(islands) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No islands found for atoll %q\n", args[0])
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Capital"})
			for _, island := range islands {
				capital := ""
				if island.AtollCapital() {
					capital = "yes"
				}
				t.AppendRow(table.Row{island.ID, island.Name, capital})
			}
			t.Render()
			return nil
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search islands by name",
		Long: `Search islands by name, case-insensitively, matching the primary name or
the Dhivehi name. Queries under two characters do not activate a search.
At most ten matches are returned, in bundle order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}

			results, active := resolver.Search(snap, args[0])
			if !active {
				return fmt.Errorf("query too short: need at least %d characters", resolver.MinQueryLen)
			}

			if GetConfig(cmd.Context()).Output == "json" {
				return writeIndented(cmd, results)
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No islands found")
				return nil
			}
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n", res.Island.ID, res.Island.Name, res.AtollName)
			}
			return nil
		},
	}
}

func writeIndented(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
