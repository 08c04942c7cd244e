package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/internal/ui"
)

var addCmd = &cobra.Command{
	Use:     "add <typo> <correction>",
	Aliases: []string{"a"},
	Short:   "Add a custom typo correction",
	Long: `Add a custom typo correction. Custom entries are checked before the
built-in table, so they can override it.`,
	Example: `  wtf add gti "git status"
  wtf add "cd desktop" "cd ~/Desktop"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wrong, correct := args[0], args[1]

		cfg := config.Get()
		if err := cfg.AddTypo(wrong, correct); err != nil {
			return err
		}

		ui.Success("added: %q → %q", wrong, correct)
		if typos.IsBuiltin(wrong) {
			ui.Note("note: this overrides the built-in correction for %q", wrong)
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <typo>",
	Aliases: []string{"rm"},
	Short:   "Remove a custom typo correction",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		removed, err := cfg.RemoveTypo(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no custom correction for %q", args[0])
		}
		ui.Success("removed custom correction for %q", args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"cls"},
	Short:   "Remove all custom typo corrections",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		count := len(cfg.Typos.Custom)
		if count == 0 {
			ui.Note("no custom corrections to clear")
			return nil
		}

		if ui.IsInteractive() && !autoYes {
			ok, err := ui.Confirm(fmt.Sprintf("Remove all %d custom corrections?", count))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := cfg.ClearTypos(); err != nil {
			return err
		}
		ui.Success("cleared %d custom corrections", count)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}
