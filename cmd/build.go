package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the content file into the output directory",
	Long: `Loads the content file, renders every placeholder and writes index.html,
style.css, script.js and the static files into the output directory.
Placeholder failures are reported but do not stop the build.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("content", "", "override content file")
	buildCmd.Flags().Bool("strict", false, "exit non-zero unless the build status is ok")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if c, _ := cmd.Flags().GetString("content"); c != "" {
		cfg.ContentFile = c
	}
	strict, _ := cmd.Flags().GetBool("strict")

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

	gen := newGenerator(cfg, logger, progress.NewReporter(), hist, false)
	rep, err := gen.Build(ctx, history.SourceBuild)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	printReport(rep)
	fmt.Printf("  Output:                %s\n", cfg.OutputDir)

	if strict && rep.Status != history.StatusOK {
		return fmt.Errorf("build finished with status %s", rep.Status)
	}
	return nil
}
