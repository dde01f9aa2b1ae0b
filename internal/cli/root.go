// Package cli implements the cobra-based commands of the demos binary.
//
// Each subcommand (list, run, config) lives in its own file. This file
// defines the root command and the flags shared by every subcommand.
package cli

import (
	"github.com/spf13/cobra"

	"go-arrays/internal/app/bootstrap"
)

// configPath is the directory searched for config.yaml. It is bound to a
// persistent flag so every subcommand sees it.
var configPath string

// NewRootCommand creates and configures the root cobra command.
// The root command only carries help text and global flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "demos",
		Short: "Array, slice and list exercises",
		Long: `demos lists and runs the array exercises: zero-valued arrays,
passing array storage vs. copied elements, jagged arrays and a label list.

Each exercise is also available as its own binary under cmd/.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs",
		"directory containing config.yaml")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// newContainer builds the dependency container with demo output going to
// the command's stdout and logs to its stderr
func newContainer(cmd *cobra.Command) (*bootstrap.Container, error) {
	return bootstrap.NewContainer(bootstrap.ContainerOptions{
		ConfigPath: configPath,
		Output:     cmd.OutOrStdout(),
		LogOutput:  cmd.ErrOrStderr(),
	})
}
