// Package cli implements the clayid command-line interface.
//
// clayid computes element ids the way the layout core does and replays
// scene files to show which elements the pointer is over and where the
// NextHovered lookahead agrees with the real hover state.
//
// # Commands
//
//   - hash string: hash a string id with an offset and seed
//   - hash number: hash a numeric offset with a seed
//   - scene: replay a TOML or YAML scene and print an element table
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/clay"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the clayid command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "clayid",
		Short:        "Inspect layout element ids and hover lookahead",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			clay.SetVerbose(verbose)
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("clayid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newHashCmd())
	root.AddCommand(newSceneCmd())

	return root
}

// Execute runs the clayid CLI.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetErr(os.Stderr)
	return root.ExecuteContext(ctx)
}
