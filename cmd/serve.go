package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it locally and rebuild on change",
	Long: `Builds the site with live reload enabled, serves the output directory and
watches the content file, the template and the static directory. Every
change triggers a rebuild and reloads the open pages.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the local dev server (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-watch", false, "serve the first build without watching for changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if open, _ := cmd.Flags().GetBool("open"); open {
		cfg.Server.Open = true
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, hist, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := newGenerator(cfg, logger, progress.NewReporter(), hist, !noWatch)
	rep, err := gen.Build(ctx, history.SourceServe)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	printReport(rep)

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		Dir:      cfg.OutputDir,
		AllowAll: cfg.Server.AllowAll,
	}, logger)

	var hub *site.Hub
	if !noWatch {
		hub = site.NewHub(logger)
	}
	r := srv.Router()
	site.RegisterRoutes(r, gen, hub)
	if hist != nil {
		history.RegisterRoutes(r, hist)
	}

	if !noWatch {
		// Build and Broadcast run on the debounce timer's goroutine;
		// Build serializes itself.
		rebuild := func() {
			rep, err := gen.Build(ctx, history.SourceWatch)
			if err != nil {
				logger.Error("rebuild failed", logging.Err(err))
				return
			}
			logger.Info("rebuilt", logging.String("status", string(rep.Status)), logging.Int("clients", hub.Clients()))
			hub.Broadcast()
		}
		debounce := cfg.Server.Debounce
		if debounce <= 0 {
			debounce = 500 * time.Millisecond
		}
		w := site.NewWatcher([]string{cfg.ContentFile, cfg.Template}, []string{cfg.StaticDir}, debounce, logger, rebuild)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("watcher stopped", logging.Err(err))
			}
		}()
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if cfg.Server.Open {
		go server.OpenBrowser(srv.URL())
	}
	fmt.Printf("Serving at %s, press Ctrl+C to stop\n", srv.URL())
	return srv.Start()
}
