package cmd

import (
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/internal/ui"
)

var (
	listFilter     string
	listBuiltin    bool
	listExportFile string
	listImportFrom string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List typo corrections",
	Long: `List custom typo corrections. With --builtin the built-in table is
included. Entries can be exported to and imported from a YAML file.`,
	Example: `  wtf list
  wtf list --filter git
  wtf list --export typos.yaml
  wtf list --import typos.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		if listImportFrom != "" {
			return importEntries(cfg, listImportFrom)
		}
		if listExportFile != "" {
			return exportEntries(cfg.Typos.Custom, listExportFile)
		}

		printEntries("Custom corrections", filterEntries(cfg.Typos.Custom, listFilter))
		if listBuiltin {
			fmt.Println()
			printEntries("Built-in corrections", filterEntries(typos.Builtin(), listFilter))
		}
		return nil
	},
}

// filterEntries keeps entries fuzzy-matching the filter on either side.
func filterEntries(entries []typos.Entry, filter string) []typos.Entry {
	if filter == "" {
		return entries
	}

	var out []typos.Entry
	for _, e := range entries {
		if fuzzy.MatchFold(filter, e.Wrong) || fuzzy.MatchFold(filter, e.Correct) {
			out = append(out, e)
		}
	}
	return out
}

func printEntries(title string, entries []typos.Entry) {
	fmt.Println(ui.Cyan(title + ":"))
	if len(entries) == 0 {
		ui.Note("  (none)")
		return
	}
	for _, e := range entries {
		fmt.Printf("  %-24s %s\n", e.Wrong, ui.Green(e.Correct))
	}
}

func exportEntries(entries []typos.Entry, path string) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.Success("exported %d corrections to %s", len(entries), path)
	return nil
}

func importEntries(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var entries []typos.Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	added := 0
	for _, e := range entries {
		if e.Wrong == "" || e.Correct == "" {
			continue
		}
		if err := cfg.AddTypo(e.Wrong, e.Correct); err != nil {
			ui.Note("skipping %q: %v", e.Wrong, err)
			continue
		}
		added++
	}

	ui.Success("imported %d corrections from %s", added, path)
	return nil
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "fuzzy-filter entries")
	listCmd.Flags().BoolVarP(&listBuiltin, "builtin", "b", false, "include the built-in table")
	listCmd.Flags().StringVar(&listExportFile, "export", "", "export custom corrections to a YAML file")
	listCmd.Flags().StringVar(&listImportFrom, "import", "", "import corrections from a YAML file")

	rootCmd.AddCommand(listCmd)
}
