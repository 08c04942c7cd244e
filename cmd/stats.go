package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/db"
	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/internal/ui"
)

var historyLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show correction statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		storage, err := db.NewStorage(storagePath(cfg))
		if err != nil {
			return fmt.Errorf("could not open correction store: %w", err)
		}
		defer storage.Close()

		stats, err := storage.GetStats(cmd.Context())
		if err != nil {
			return err
		}

		title := cases.Title(language.English)
		fmt.Println(ui.Cyan(title.String("correction stats")))
		printSetting("unique typos fixed", fmt.Sprintf("%d", stats.UniqueTypos))
		printSetting("total fixes applied", fmt.Sprintf("%d", stats.TotalFixes))
		if stats.MostFixed != "" {
			printSetting("most fixed", fmt.Sprintf("%q → %q (%d times)", stats.MostFixed, stats.MostFixedFor, stats.MostFixedN))
		}
		printSetting("custom corrections", fmt.Sprintf("%d", len(cfg.Typos.Custom)))
		printSetting("built-in corrections", fmt.Sprintf("%d", len(typos.Builtin())))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently applied corrections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		storage, err := db.NewStorage(storagePath(cfg))
		if err != nil {
			return fmt.Errorf("could not open correction store: %w", err)
		}
		defer storage.Close()

		records, err := storage.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			ui.Note("no corrections applied yet")
			return nil
		}

		fmt.Println(ui.Cyan("Recent corrections:"))
		for _, rec := range records {
			fmt.Printf("  %-24s %s  %s\n",
				rec.Input,
				ui.Green(rec.Command),
				ui.HiBlackf("(%s, %dx, last %s)", rec.Confidence, rec.Count, rec.LastUsed.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of records to show")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
}
