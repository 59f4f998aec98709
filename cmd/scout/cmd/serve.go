package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/api"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the research HTTP API",
	Long: `Start an HTTP server exposing the coordinator.

Endpoints:
  POST /api/v1/research       run a query, returns the synthesized report
  GET  /api/v1/status         worker pool snapshot
  GET  /api/v1/status/report  markdown status report
  GET  /healthz               liveness probe

The config file is watched while serving; profile and report settings
apply to the next run without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"listen address (default from config, 127.0.0.1:8787)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, loader, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	coordinator, cleanup, err := buildCoordinator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	watcher := config.NewWatcher(loader, logger, coordinator.UpdateConfig)
	if err := watcher.Start(); err != nil {
		logger.Warn("config watcher unavailable", "error", err)
	}
	defer watcher.Stop()

	addr := serveAddr
	if addr == "" {
		addr = cfg.API.Addr
	}

	server := api.NewServer(coordinator,
		api.WithLogger(logger),
		api.WithAllowedOrigins(cfg.API.AllowedOrigins),
	)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server listening", "addr", addr)
		fmt.Fprintf(os.Stderr, "scout API listening on http://%s\n", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case <-cmd.Context().Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
