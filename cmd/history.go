package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Scharxi/mini-shell/core/command"
	"github.com/Scharxi/mini-shell/core/vos"
)

var clearHistory bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the saved command history, most recent first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		builtin := command.New("history")
		if clearHistory {
			builtin.AppendFlag(command.NewFlag(command.LongFlag("--clear")))
		}

		return builtin.Execute(cmd.Context(), &command.Env{
			OS:      vos.NewHostOS(nil, cmd.OutOrStdout(), cmd.ErrOrStderr()),
			History: configuration.HistoryStore(),
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVarP(&clearHistory, "clear", "c", false, "delete all saved entries")
}
