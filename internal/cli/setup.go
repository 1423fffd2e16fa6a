// ABOUTME: Setup command for generating a starter config file
// ABOUTME: Prints a commented sample config to stdout
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mwhite/jrnl/internal/config"
	"github.com/mwhite/jrnl/internal/editor"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Print a sample config file",
	Long:  `Print a sample config file to stdout. Save it to one of the search paths, set journal_path, and you're ready to go.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample := config.Defaults()
		sample.Editor = editor.UserDefault()
		sample.JournalPath = "~/path/to/journal"

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "# jrnl config file")
		fmt.Fprintln(out, "# Save this file as:")
		fmt.Fprintf(out, "#   %s\n", filepath.Join(config.GetConfigHome(), "jrnl.toml"))
		fmt.Fprintln(out, "# (a legacy YAML ~/.jrnlrc is also honored)")
		fmt.Fprintln(out)

		return toml.NewEncoder(out).Encode(sample)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
