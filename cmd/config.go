package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/ui"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show the current configuration",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		fmt.Println(ui.Cyan("Configuration") + ui.HiBlackf(" (%s)", config.Path()))
		printSetting("auto mode", onOff(cfg.App.AutoMode))
		printSetting("ai mode", onOff(cfg.AI.Enabled))
		printSetting("ai model", cfg.AI.Model)
		printSetting("api key", keyStatus(cfg))
		printSetting("threshold", fmt.Sprintf("%.2f", cfg.Match.Threshold))
		printSetting("max suggestions", fmt.Sprintf("%d", cfg.Match.MaxSuggestions))
		printSetting("custom typos", fmt.Sprintf("%d", len(cfg.Typos.Custom)))
		printSetting("database", cfg.Database.Path)
		printSetting("log file", cfg.Logging.File)
		return nil
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive setup wizard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return fmt.Errorf("setup needs an interactive terminal")
		}
		return runSetupWizard()
	},
}

// runSetupWizard walks through the main settings with a form.
func runSetupWizard() error {
	cfg := config.Get()

	autoMode := cfg.App.AutoMode
	aiMode := cfg.AI.Enabled
	apiKey := cfg.AI.GoogleAPIKey
	installShell := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run the top suggestion automatically?").
				Description("When off, wtf always asks before running anything.").
				Value(&autoMode),
			huh.NewConfirm().
				Title("Enable the AI fallback?").
				Description("Used only when the built-in tables find nothing.").
				Value(&aiMode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Google API key").
				Description("Leave empty to use the GOOGLE_API_KEY environment variable.").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
		).WithHideFunc(func() bool { return !aiMode }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Install shell integration?").
				Description("Makes your shell flush history so 'wtf save' works.").
				Value(&installShell),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.App.AutoMode = autoMode
	cfg.AI.Enabled = aiMode
	cfg.AI.GoogleAPIKey = apiKey
	if err := cfg.MarkFirstRunComplete(); err != nil {
		return err
	}
	if err := config.Save(); err != nil {
		return err
	}

	if installShell {
		if err := installIntegration(); err != nil {
			ui.Failure("shell integration failed: %v", err)
		}
	}

	ui.Success("setup complete")
	return nil
}

func printSetting(name, value string) {
	fmt.Printf("  %-18s %s\n", name, ui.Green(value))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func keyStatus(cfg *config.Config) string {
	if cfg.APIKey() != "" {
		return "set"
	}
	return "not set"
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setupCmd)
}
