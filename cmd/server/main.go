package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dconn.dev/islands/internal/config"
	"dconn.dev/islands/internal/handlers"
	"dconn.dev/islands/internal/services"
)

// sweepInterval is how often idle sessions are dropped
const sweepInterval = time.Minute

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve tile island layouts over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, _ := cfg.Level()
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return serve(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	islandService := services.NewIslandService(services.IslandServiceOptions{
		Params:      cfg.Layout,
		ResizeDelay: cfg.ResizeDelay(),
		TTL:         cfg.SessionTTL.Duration,
		MaxSessions: cfg.MaxSessions,
		Logger:      logger,
	})
	defer islandService.Close()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, islandService, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go sweep(ctx, islandService)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.ServerAddr, "season", cfg.Season)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func sweep(ctx context.Context, islandService *services.IslandService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			islandService.Sweep()
		}
	}
}
