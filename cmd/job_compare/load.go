package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-compare/internal/browse"
	"github.com/jonathan/job-compare/internal/config"
	"github.com/jonathan/job-compare/internal/db"
	"github.com/jonathan/job-compare/internal/ingestion"
	"github.com/jonathan/job-compare/internal/observability"
	"github.com/jonathan/job-compare/internal/tags"
)

// app is everything a command needs after startup.
type app struct {
	cfg     config.Config
	svc     *browse.Service
	printer *observability.Printer
	close   func()
}

// loadConfig reads --config when given, fills the rest from defaults and
// applies the environment and flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = url
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.APIKey == "" {
		cfg.APIKey = key
	}
	if tagsPath != "" {
		cfg.TagsPath = tagsPath
	}
	cfg.Verbose = cfg.Verbose || verbose
	return cfg, nil
}

// loadApp builds the tag registry and the first catalog snapshot. Listings
// come from PostgreSQL when a database URL is configured and from the
// configured CSV sources otherwise.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	reg, err := tags.Load(cfg.TagsPath)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var loader browse.Loader
	closeFn := func() {}
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		loader = conn.Loader()
		closeFn = conn.Close
	} else {
		loader = ingestion.NewLoader(cfg.Sources)
	}

	cat, summary, err := loader(ctx)
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	a := &app{
		cfg:     cfg,
		svc:     browse.New(reg, cat, loader),
		printer: observability.NewPrinter(cmd.OutOrStdout()),
		close:   closeFn,
	}
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintLoadSummary(summary)
	}
	return a, nil
}
