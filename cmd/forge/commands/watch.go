package commands

import "github.com/spf13/cobra"

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "watch",
		Short:              "Rebuild whenever a source or header changes",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			c.warnUnknownArgs(args)
			return c.app.Watch(cmd.Context(), c.buildOptions(cmd))
		},
	}
	addClearFlag(cmd)
	return cmd
}
