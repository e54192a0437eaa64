// Package main implements the entry point for the tasks API server, a task
// CRUD HTTP service backed by an in-memory store.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the tasks-api command tree.
func newRootCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
		port       int
	)

	root := &cobra.Command{
		Use:          "tasks-api",
		Short:        "Task CRUD HTTP service with an in-memory store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []config.Option{config.WithEnvFile(envFile)}
			if configFile != "" {
				opts = append(opts, config.WithConfigFile(configFile))
			}
			if cmd.Flags().Changed("port") {
				opts = append(opts, config.WithOverride("server.port", port))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, opts...)
		},
	}

	root.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	root.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default .env if present)")
	root.Flags().IntVar(&port, "port", 0, "HTTP listen port (overrides TASKS_SERVER_PORT)")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "tasks-api %s\n", version)
}

// runServer loads configuration, sets up logging and runs the application
// until ctx is cancelled.
func runServer(ctx context.Context, opts ...config.Option) error {
	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled)

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
