package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Scharxi/mini-shell/core/command"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)

		for _, name := range command.BuiltinNames() {
			fmt.Fprintf(tw, "%s\t%s\n", name, command.New(name).Help().Short)
		}
		fmt.Fprintf(tw, "%s\t%s\n", "exit, quit", "Save the history and leave the shell.")

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
