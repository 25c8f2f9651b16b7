package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ui-server/core/config"
	"ui-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the UI server",
	Long:  `Loads configuration, registers the API and static routes, then listens until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 3. Register routes
		app, err := newApplication(ctx, cfg, logg)
		if err != nil {
			logg.Error("Failed to initialize server", zap.Error(err))
			_ = logg.Sync()
			exit(1)
			return
		}

		// 4. Listen until interrupted
		code := app.run(ctx)
		_ = logg.Sync()
		if code != 0 {
			exit(code)
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	RootCmd.Run = startCmd.Run
}
