package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs from the ledger",
	Long: `History lists the most recent generation runs recorded in the run ledger,
newest first. The ledger is enabled by setting output.ledger to a database
path in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Output.Ledger == "" {
			return fmt.Errorf("no run ledger configured: set output.ledger in the config file")
		}

		limit, _ := cmd.Flags().GetInt("limit")

		store, err := ledger.Open(cfg.Output.Ledger)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(out, "%4d  %s  %s -> %s", e.ID, e.CreatedAt.Format(time.RFC3339), e.Input, e.PDF)
			if e.Archive != "" {
				fmt.Fprintf(out, "  (archive %s, md5 %s)", e.Archive, e.MD5)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}
