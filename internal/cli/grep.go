// ABOUTME: Grep command for searching journal entries
// ABOUTME: Supports regex patterns, date ranges, and highlighted matches
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/mwhite/jrnl/internal/journal"
	"github.com/spf13/cobra"
)

var (
	grepSince      string
	grepUntil      string
	grepIgnoreCase bool
	grepLimit      int
)

var grepCmd = &cobra.Command{
	Use:   "grep [pattern]",
	Short: "Search entries for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pattern := args[0]
		if grepIgnoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}

		var since, until time.Time
		if grepSince != "" {
			t, err := dateparse.ParseAny(grepSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			since = dayStart(t)
		}
		if grepUntil != "" {
			t, err := dateparse.ParseAny(grepUntil)
			if err != nil {
				return fmt.Errorf("invalid --until date: %w", err)
			}
			until = dayStart(t)
		}

		entries, err := journal.List(cfg.JournalPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to list entries: %w", err)
		}

		highlight := color.New(color.FgRed, color.Bold).SprintFunc()
		out := cmd.OutOrStdout()

		matches := 0
		for _, entry := range entries {
			if !since.IsZero() && entry.Date.Before(since) {
				continue
			}
			if !until.IsZero() && entry.Date.After(until) {
				continue
			}

			content, err := os.ReadFile(entry.Path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", entry.Path, err)
			}

			for i, line := range strings.Split(string(content), "\n") {
				if !re.MatchString(line) {
					continue
				}
				marked := re.ReplaceAllStringFunc(line, func(m string) string {
					return highlight(m)
				})
				fmt.Fprintf(out, "%s:%d: %s\n", entry.Date.Format(journal.DateLayout), i+1, marked)
				matches++
				if grepLimit > 0 && matches >= grepLimit {
					return nil
				}
			}
		}

		return nil
	},
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func init() {
	grepCmd.Flags().StringVar(&grepSince, "since", "", "Earliest entry date (natural language or ISO)")
	grepCmd.Flags().StringVar(&grepUntil, "until", "", "Latest entry date (natural language or ISO)")
	grepCmd.Flags().BoolVarP(&grepIgnoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	grepCmd.Flags().IntVarP(&grepLimit, "limit", "n", 0, "Maximum matches (0 for unlimited)")
	rootCmd.AddCommand(grepCmd)
}
