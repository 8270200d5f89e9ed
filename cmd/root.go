package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/Scharxi/mini-shell/core/config"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrPermission) {
		log.Println("Couldn't load config: check the permissions of", cfgPath)
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "msh",
	Short: "A minimal interactive shell",
	Long: `A minimal shell with a handful of builtins (cd, pwd, history),
external programs and pipelines.

Without arguments msh starts an interactive session, use -c to run a single
line instead.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		shell, cleanup, err := newShell(cmd, configuration)
		if err != nil {
			return err
		}
		defer cleanup()

		if cmd.Flags().Changed("command") {
			runErr := shell.RunLine(cmd.Context(), commandLine)
			if err := shell.SaveHistory(); err != nil {
				log.Printf("Failed to save history to %s: %v", configuration.HistoryPath(), err)
			}
			return runErr
		}

		return shell.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
