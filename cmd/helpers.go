package cmd

import (
	"fmt"
	"time"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command; --verbose forces debug level.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	lc := cfg.Log
	if verbose {
		lc.Level = "debug"
	}
	return logging.New(lc)
}

// openHistory opens the build history database. It returns a nil store
// when history is disabled with an empty history_db.
func openHistory(cfg *config.Config) (*db.DB, *history.Store, error) {
	if cfg.HistoryDB == "" {
		return nil, nil, nil
	}
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return database, history.NewStore(database), nil
}

func newGenerator(cfg *config.Config, logger logging.Logger, reporter progress.Reporter, hist *history.Store, liveReload bool) *site.Generator {
	return site.New(site.Options{
		ContentFile:   cfg.ContentFile,
		Template:      cfg.Template,
		OutputDir:     cfg.OutputDir,
		StaticDir:     cfg.StaticDir,
		StaticInclude: cfg.StaticInclude,
		StaticExclude: cfg.StaticExclude,
		SiteTitle:     cfg.SiteTitle,
		BaseURL:       cfg.BaseURL,
		Nav:           cfg.Navigation,
		LiveReload:    liveReload,
	}, logger, reporter, hist)
}

// printReport writes the build summary shown after build and serve.
func printReport(rep *site.Report) {
	fmt.Println()
	fmt.Printf("Build %s: %s\n", rep.BuildID, rep.Status)
	fmt.Printf("  Placeholders rendered: %d\n", len(rep.Rendered))
	fmt.Printf("  Injected:              %d\n", len(rep.Injected))
	if len(rep.Failures) > 0 {
		fmt.Printf("  Failed:                %d\n", len(rep.Failures))
		for _, f := range rep.Failures {
			fmt.Printf("    %s: %s\n", f.Placeholder, f.Error)
		}
	}
	if len(rep.Missing) > 0 {
		fmt.Printf("  Missing elements:      %v\n", rep.Missing)
	}
	if rep.Assets.Copied+rep.Assets.Unchanged > 0 {
		fmt.Printf("  Static files:          %d copied, %d unchanged\n", rep.Assets.Copied, rep.Assets.Unchanged)
	}
	for _, w := range rep.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}
	for _, e := range rep.Errors {
		fmt.Printf("  Error: %s\n", e)
	}
	fmt.Printf("  Duration:              %s\n", rep.FinishedAt.Sub(rep.StartedAt).Round(time.Millisecond))
}
