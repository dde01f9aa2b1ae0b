package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [NAME...]",
		Short: "Run one or more demos",
		Long: `Run the named demos in order. Output is identical to the standalone
binaries. With --all every demo runs under a "=== name ===" banner.`,
		Example: "  demos run label-list\n  demos run --all",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if all == (len(args) > 0) {
				return errors.New("give demo names or --all, not both or neither")
			}

			container, err := newContainer(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, container.Close())
			}()

			if all {
				return container.Runner.RunAll()
			}

			for _, name := range args {
				if err := container.Runner.RunByName(name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every demo")

	return cmd
}
