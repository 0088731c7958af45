// Package cli wires the command-line surface: flag parsing, config
// resolution, seed loading with its default-tree fallback, and handing
// the session to the interactive or plain front-end.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	flagVFS     string
	flagScript  string
	flagConfig  string
	flagVerbose int
)

var rootCmd = &cobra.Command{
	Use:   "vfsh",
	Short: "Shell emulator over an in-memory virtual filesystem",
	Long: `vfsh is a command shell that operates entirely on an in-memory
virtual filesystem. The tree can be seeded from a declarative XML
document (primary mode) or imported once from a real directory; after
that no command ever touches the host filesystem.

Without --vfs, or when the seed fails to load, the session starts on a
minimal built-in tree.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	rootCmd.Flags().StringVar(&flagVFS, "vfs", "",
		"Path to the VFS seed: an XML document (primary) or a directory to import")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "Path to a startup script")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or JSON config file")
	rootCmd.Flags().IntVarP(&flagVerbose, "verbose", "v", 0,
		"Log verbosity level between 1 (error) and 5 (trace)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
