package cmd

import (
	"github.com/OliveiraNt/kafka-utils/internal/adapters/tui"
	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/spf13/cobra"
)

// runConsole starts the interactive program. Tests replace it.
var runConsole = tui.Run

func newConsoleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			logFile, err := utils.LogToFile()
			if err != nil {
				return err
			}
			defer func() {
				utils.SetOutput(cmd.ErrOrStderr())
				_ = logFile.Close()
			}()

			if conn.repo != nil {
				conn.repo.OnChange(func(c config.ClusterConfig) {
					utils.Logger.Info("profile changed, next command uses new settings", "profile", c.Name, "brokers", c.Brokers)
				})
				if err := conn.repo.Watch(); err != nil {
					utils.Logger.Warn("config watch disabled", "err", err)
				}
			}

			utils.Logger.Info("console started", "target", conn.label)
			return runConsole(cmd.Context(), conn.gw, conn.label)
		},
	}
}
