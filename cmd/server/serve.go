package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"searchportal/internal/fetcher"
	"searchportal/internal/search"
	"searchportal/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := newStore(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	service := search.NewService(st)
	f := fetcher.New(fetcher.Config{
		UserAgent:    cfg.FetchUserAgent,
		Timeout:      cfg.FetchTimeout,
		AllowPrivate: cfg.FetchAllowPrivate,
	})
	srv.RegisterRoutes(st, service, f)

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	slog.Info("server started", "addr", cfg.ServerAddr, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return err
	}
	slog.Info("server exited")
	return nil
}
