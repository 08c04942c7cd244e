package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mewisme/wtf/internal/shell"
	"github.com/mewisme/wtf/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the binary and shell integration",
	Long: `Copy the wtf binary into a directory on PATH and add the history
integration block to your shell's rc file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := shell.InstallBinary()
		if err != nil {
			return err
		}
		ui.Success("binary installed at %s", target)

		return installIntegration()
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the binary and shell integration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		installer := shell.NewInstaller(shell.DetectShell())
		if err := installer.Uninstall(); err != nil {
			return err
		}
		ui.Success("shell integration removed for %s", installer.GetShellType())

		if err := shell.UninstallBinary(); err != nil {
			return err
		}
		ui.Success("binary removed")
		return nil
	},
}

var configHistoryCmd = &cobra.Command{
	Use:     "config-history",
	Aliases: []string{"ch"},
	Short:   "Configure your shell to flush history after every command",
	Long: `Add the history integration block to your shell's rc file (for bash:
histappend plus a PROMPT_COMMAND flush). Without it, the shell only
writes history at exit and wtf cannot see the command you just mistyped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return installIntegration()
	},
}

// installIntegration wires the current shell's rc file.
func installIntegration() error {
	installer := shell.NewInstaller(shell.DetectShell())
	if installer.IsInstalled() {
		ui.Note("shell integration already installed for %s", installer.GetShellType())
		return nil
	}
	if err := installer.Install(); err != nil {
		return err
	}
	ui.Success("shell integration installed for %s (restart your shell to apply)", installer.GetShellType())
	return nil
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(configHistoryCmd)
}
