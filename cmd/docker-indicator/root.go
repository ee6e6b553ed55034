package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auto-dns/docker-indicator/internal/app"
	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/auto-dns/docker-indicator/internal/logger"
)

type contextKey string

const configKey = contextKey("config")

var rootCmd = &cobra.Command{
	Use:   "docker-indicator",
	Short: "System tray indicator for Docker containers",
	Long:  "Shows local Docker containers in the system tray, lets you start and stop them, and notifies on state changes.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		if err := config.InitConfig(viper.GetViper(), configFile); err != nil {
			return err
		}
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		ctx := context.WithValue(cmd.Context(), configKey, cfg)
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmd.Context().Value(configKey).(*config.Config)

		logInstance := logger.SetupLogger(&cfg.Logging, os.Stdout)

		application, err := app.New(cfg, logInstance)
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}
		return run(application, func(format string, args ...any) {
			logInstance.Info().Msgf(format, args...)
		})
	},
}

// run drives an application until it exits or the process is signalled, then
// releases its resources.
func run(application application, logf func(string, ...any)) (err error) {
	defer func() {
		if closeErr := application.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("cleanup: %w", closeErr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logf("Received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// Run blocks in the tray's event loop until the user quits.
	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func init() {
	// The tray toolkit needs the main OS thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().String("config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "INFO", "set log level (e.g. INFO, DEBUG, WARN)")
	_ = viper.BindPFlag("log.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
		os.Exit(1)
	}
}
