// ABOUTME: List command for displaying recent journal entries
// ABOUTME: Supports table and JSON output formats
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mwhite/jrnl/internal/journal"
	"github.com/spf13/cobra"
)

var (
	listLimit      int
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		entries, err := journal.List(cfg.JournalPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// No journal root yet means no entries.
				entries = nil
			} else {
				return fmt.Errorf("failed to list entries: %w", err)
			}
		}

		if listLimit > 0 && len(entries) > listLimit {
			entries = entries[:listLimit]
		}

		out := cmd.OutOrStdout()
		if listJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		} else {
			fmt.Fprintln(out, "Date\t\tPath")
			fmt.Fprintln(out, "----\t\t----")
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\n", entry.Date.Format(journal.DateLayout), entry.Path)
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Number of entries to show")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
