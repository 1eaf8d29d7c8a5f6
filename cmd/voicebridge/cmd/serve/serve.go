package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"voicebridge/internal/app"
	"voicebridge/internal/config"
)

var configPath string

// shutdownTimeout bounds how long in-flight provider calls may finish after
// a termination signal.
const shutdownTimeout = 15 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the voicebridge API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		if err := srv.Start(); err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
}
