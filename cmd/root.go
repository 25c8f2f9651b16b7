package cmd

import (
	"fmt"
	"os"

	"ui-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exit terminates the process; replaced in tests.
var exit = os.Exit

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ui-server",
	Short: "UI Server",
	Long: `UI Server serves the prebuilt user and admin client bundles
next to a small JSON API. Without a subcommand it starts the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  logger.LevelDebug,
			Format: logger.FormatConsole,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		exit(1)
	}
}
