package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/history"
	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/internal/ui"
	"github.com/mewisme/wtf/pkg/fuzzy"
)

var saveCmd = &cobra.Command{
	Use:     "save [correction]",
	Aliases: []string{"s"},
	Short:   "Save your last command as a custom typo",
	Long: `Save the last command from shell history as a custom typo. With a
correction argument the pair is stored directly; without one, wtf runs
its normal correction flow on the command first.`,
	Example: `  wtf save "git status"
  wtf save`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reader := history.NewReader()
		entry, err := reader.LastCommand(ctx)
		if err != nil {
			return fmt.Errorf("could not read your last command: %w", err)
		}

		last := entry.Command
		ui.Note("last command: %s", last)

		// Warn when the command looks fine; saving it anyway is allowed.
		if !fuzzy.DefaultMatcher().LooksLikeTypo(last, typos.Canonical()) {
			ui.Note("warning: %q does not look like a typo of a known command", last)
		}

		if len(args) == 1 {
			if fuzzy.DefaultMatcher().LooksLikeTypo(args[0], typos.Canonical()) {
				ui.Note("warning: the replacement %q itself looks like a typo", args[0])
			}
			cfg := config.Get()
			if err := cfg.AddTypo(last, args[0]); err != nil {
				return err
			}
			ui.Success("saved: %q → %q", last, args[0])
			return nil
		}

		return fixCommand(ctx, last)
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
