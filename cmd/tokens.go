package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Scharxi/mini-shell/core/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens LINE...",
	Short: "Print the tokens a line of input is split into.",
	Long: `Print the tokens a line of input is split into, one per line.

Arguments are joined with a single space, quote the line to preserve it
exactly:

  msh tokens 'ls -la --color=auto | grep go'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tok := range lexer.Scan(strings.Join(args, " ")) {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
