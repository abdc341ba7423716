package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent builds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.HistoryDB == "" {
			return fmt.Errorf("build history is disabled (history_db is empty)")
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx := context.Background()
		if keep, _ := cmd.Flags().GetInt("prune"); keep > 0 {
			n, err := store.Prune(ctx, keep)
			if err != nil {
				return err
			}
			fmt.Printf("Pruned %d build(s)\n", n)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")
		builds, err := store.List(ctx, history.Filter{Status: history.Status(status), Limit: limit})
		if err != nil {
			return err
		}
		if len(builds) == 0 {
			fmt.Println("No builds recorded yet.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTARTED\tSOURCE\tSTATUS\tRENDERED\tFAILED\tMISSING\tDURATION")
		for _, b := range builds {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				shortID(b.ID), b.StartedAt.Local().Format("2006-01-02 15:04:05"), b.Source, b.Status,
				b.Rendered, b.Failed, b.Missing, b.Duration().Round(time.Millisecond))
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of builds to show")
	historyCmd.Flags().String("status", "", "only show builds with this status (ok, partial, failed)")
	historyCmd.Flags().Int("prune", 0, "delete all but the newest N builds")
	rootCmd.AddCommand(historyCmd)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
