// ABOUTME: Root command definition and the open-entries flow
// ABOUTME: Handles global flags, config loading, and the journal root prompt
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mwhite/jrnl/internal/config"
	"github.com/mwhite/jrnl/internal/dates"
	"github.com/mwhite/jrnl/internal/editor"
	"github.com/mwhite/jrnl/internal/journal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	forceTimestamp bool
	noTimestamp    bool
)

var rootCmd = &cobra.Command{
	Use:     "jrnl [date...]",
	Short:   "Plain-text daily journal",
	Long:    `jrnl keeps one plain-text file per day under <journal_path>/<year>/ and opens it in your editor, optionally stamping the date and time first.`,
	Version: "1.0.0",
	Args:    cobra.ArbitraryArgs,
	RunE:    runOpen,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.Flags().BoolVarP(&forceTimestamp, "timestamp", "t", false, "write a timestamp before opening the editor")
	rootCmd.Flags().BoolVar(&noTimestamp, "no-timestamp", false, "don't write a timestamp before opening the editor")
	rootCmd.MarkFlagsMutuallyExclusive("timestamp", "no-timestamp")
}

// loadConfig loads the journal config for any command that needs it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	editorName, err := editor.Choose(cfg.Editor)
	if err != nil {
		return err
	}

	ok, err := ensureJournalRoot(cmd, cfg.JournalPath)
	if err != nil {
		return err
	}
	if !ok {
		// User declined to create the journal root. Not an error.
		return nil
	}

	now := time.Now()

	var resolved []time.Time
	if len(args) == 0 {
		resolved = []time.Time{dates.Today(now, cfg.HoursPastMidnightIncludedInDay)}
	} else {
		resolved, err = dates.Resolve(args, now, dates.Fuzzy())
		if err != nil {
			return err
		}
	}

	writeStamp := forceTimestamp || (cfg.WriteTimestamp && !noTimestamp)
	readMode := len(args) > 0 && !cfg.CreateNewEntriesWhenSpecifyingDates

	// One editor session at a time: each entry is opened and fully waited
	// on before the next date.
	for _, date := range resolved {
		if err := journal.Open(date, editorName, cfg.JournalPath, writeStamp, readMode, cmd.ErrOrStderr(), time.Now()); err != nil {
			return err
		}
	}

	return nil
}

// ensureJournalRoot makes sure the journal root directory exists, asking the
// user before creating it. Returns false when the user declines (or stdin
// isn't a terminal to ask on), which callers treat as a clean exit.
func ensureJournalRoot(cmd *cobra.Command, root string) (bool, error) {
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		return true, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Journal directory %s does not exist.\n", root)
		return false, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Create '%s'? [y/N] ", root)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	if answer != "y" && answer != "yes" {
		return false, nil
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return false, fmt.Errorf("failed to create journal directory: %w", err)
	}
	color.Green("Created %s", root)
	return true, nil
}
