package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/ui"
)

var autoModeCmd = &cobra.Command{
	Use:     "auto-mode [on|off]",
	Aliases: []string{"am"},
	Short:   "Show or set auto mode",
	Long:    `Auto mode runs the top suggestion without asking.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if len(args) == 1 {
			on, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			if err := cfg.SetAutoMode(on); err != nil {
				return err
			}
		}
		ui.Note("auto mode is %s", onOff(cfg.App.AutoMode))
		return nil
	},
}

var toggleAutoCmd = &cobra.Command{
	Use:     "toggle-auto",
	Aliases: []string{"ta"},
	Short:   "Toggle auto mode",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if err := cfg.SetAutoMode(!cfg.App.AutoMode); err != nil {
			return err
		}
		ui.Success("auto mode is now %s", onOff(cfg.App.AutoMode))
		return nil
	},
}

var aiModeCmd = &cobra.Command{
	Use:     "ai-mode [on|off]",
	Aliases: []string{"aim"},
	Short:   "Show or set the AI fallback",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if len(args) == 1 {
			on, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			if err := cfg.SetAIMode(on); err != nil {
				return err
			}
		}
		ui.Note("ai mode is %s (key %s)", onOff(cfg.AI.Enabled), keyStatus(cfg))
		return nil
	},
}

var toggleAICmd = &cobra.Command{
	Use:     "toggle-ai",
	Aliases: []string{"tai"},
	Short:   "Toggle the AI fallback",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if err := cfg.SetAIMode(!cfg.AI.Enabled); err != nil {
			return err
		}
		ui.Success("ai mode is now %s", onOff(cfg.AI.Enabled))
		if cfg.AI.Enabled && cfg.APIKey() == "" {
			ui.Note("no API key configured; run 'wtf set-api-key' or set GOOGLE_API_KEY")
		}
		return nil
	},
}

var setAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key <key>",
	Short: "Store the Google API key for the AI fallback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Get().SetAPIKey(args[0]); err != nil {
			return err
		}
		ui.Success("API key saved")
		return nil
	},
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func init() {
	rootCmd.AddCommand(autoModeCmd)
	rootCmd.AddCommand(toggleAutoCmd)
	rootCmd.AddCommand(aiModeCmd)
	rootCmd.AddCommand(toggleAICmd)
	rootCmd.AddCommand(setAPIKeyCmd)
}
