package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"searchportal/internal/config"
	"searchportal/internal/store"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "searchportal",
	Short: "A demo search portal over an in-memory webpage index",
	Long: `searchportal serves a search engine style web UI and JSON API over a
small in-memory set of webpages. The index is seeded at startup and is
lost when the process exits.

Commands:
  serve   Start the HTTP server (default)
  search  Run a query against the seeded index and print the results`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		initLogger(cfg)
	},
	RunE: runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initLogger(cfg *config.Config) {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// newStore builds the store and loads the built-in pages and the optional
// seed file.
func newStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	st := store.New()

	if cfg.SeedDefaults {
		n, err := st.Seed(ctx, store.DefaultSeed())
		if err != nil {
			return nil, err
		}
		slog.Info("seeded default webpages", "count", n)
	}

	seed, err := config.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	if inputs := seed.Inputs(); len(inputs) > 0 {
		n, err := st.Seed(ctx, inputs)
		if err != nil {
			return nil, err
		}
		slog.Info("seeded webpages from file", "file", cfg.SeedFile, "count", n, "skipped", len(inputs)-n)
	}

	return st, nil
}
