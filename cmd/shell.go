package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Scharxi/mini-shell/core"
	"github.com/Scharxi/mini-shell/core/command"
	"github.com/Scharxi/mini-shell/core/config"
	"github.com/Scharxi/mini-shell/core/logger"
	"github.com/Scharxi/mini-shell/core/vos"
)

// newShell wires a shell to the process streams and the configured history
// and event log.
func newShell(cmd *cobra.Command, configuration *config.Configuration) (*core.Shell, func(), error) {
	events := logger.NewNopLogger()
	cleanup := func() {}

	eventLog, err := configuration.OpenEventLog()
	if err != nil {
		return nil, nil, err
	}
	if eventLog != nil {
		events = logger.NewJsonLinesLogRecorder(eventLog)
		cleanup = func() { eventLog.Close() }
	}

	vio := vos.NewVIOAdapter(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
	shell := core.NewShell(vio, core.Options{
		Prompt:       configuration.Prompt,
		ColorMode:    configuration.Color,
		PipelineMode: command.PipelineMode(configuration.PipelineMode),
		History:      configuration.HistoryStore(),
		Events:       events.NewSession(),
		Log:          log.New(cmd.ErrOrStderr(), "[msh] ", 0),
	})

	return shell, cleanup, nil
}
