// Package shell provides shell integration for WTF
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// marker identifies the integration block in shell rc files.
const marker = "# WTF - command typo fixer"

// ShellType represents supported shell types
type ShellType string

const (
	Bash       ShellType = "bash"
	Zsh        ShellType = "zsh"
	Fish       ShellType = "fish"
	PowerShell ShellType = "powershell"
)

// Installer wires WTF into a shell's rc file. The integration makes
// the shell flush history after every command, so `wtf save` always
// sees the line the user just mistyped.
type Installer interface {
	Install() error
	Uninstall() error
	IsInstalled() bool
	GetShellType() ShellType
}

// BaseInstaller provides common functionality
type BaseInstaller struct {
	Shell          ShellType
	ConfigFile     string
	IntegrationStr string
}

// GetShellType returns the shell type
func (b *BaseInstaller) GetShellType() ShellType {
	return b.Shell
}

// DetectShell detects the current shell
func DetectShell() ShellType {
	if runtime.GOOS == "windows" {
		return PowerShell
	}

	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return Zsh
	case "fish":
		return Fish
	case "pwsh", "powershell":
		return PowerShell
	default:
		return Bash
	}
}

// NewInstaller creates an installer for the specified shell
func NewInstaller(shellType ShellType) Installer {
	switch shellType {
	case Zsh:
		return newRCInstaller(Zsh, filepath.Join(homeDir(), ".zshrc"), zshIntegration)
	case Fish:
		return newRCInstaller(Fish, filepath.Join(homeDir(), ".config", "fish", "config.fish"), fishIntegration)
	case PowerShell:
		return newRCInstaller(PowerShell, powerShellProfile(), powerShellIntegration)
	default:
		return newRCInstaller(Bash, filepath.Join(homeDir(), ".bashrc"), bashIntegration)
	}
}

// InstallBinary copies the running executable into a directory on PATH.
// It returns the installed path.
func InstallBinary() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate running binary: %w", err)
	}

	dir := binDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	target := filepath.Join(dir, binaryName())
	if sameFile(self, target) {
		return target, nil
	}

	if err := copyFile(self, target); err != nil {
		return "", fmt.Errorf("failed to install binary: %w", err)
	}
	if err := os.Chmod(target, 0755); err != nil {
		return "", err
	}

	return target, nil
}

// UninstallBinary removes the installed binary if present.
func UninstallBinary() error {
	target := filepath.Join(binDir(), binaryName())
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", target, err)
	}
	return nil
}

func binDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(homeDir(), "AppData", "Local", "wtf", "bin")
	}
	return filepath.Join(homeDir(), ".local", "bin")
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "wtf.exe"
	}
	return "wtf"
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// rcInstaller appends/removes a marked block in a shell rc file.
type rcInstaller struct {
	BaseInstaller
}

func newRCInstaller(shell ShellType, configFile, integration string) *rcInstaller {
	return &rcInstaller{
		BaseInstaller: BaseInstaller{
			Shell:          shell,
			ConfigFile:     configFile,
			IntegrationStr: integration,
		},
	}
}

func (r *rcInstaller) Install() error {
	dir := filepath.Dir(r.ConfigFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return appendToFile(r.ConfigFile, r.IntegrationStr)
}

func (r *rcInstaller) Uninstall() error {
	return removeBlock(r.ConfigFile)
}

func (r *rcInstaller) IsInstalled() bool {
	return fileContains(r.ConfigFile, marker)
}

func powerShellProfile() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(homeDir(), "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	}
	return filepath.Join(homeDir(), ".config", "powershell", "Microsoft.PowerShell_profile.ps1")
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

func appendToFile(filename, content string) error {
	if fileContains(filename, marker) {
		return nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString("\n" + content + "\n")
	return err
}

// removeBlock strips the marked integration block, up to the first
// blank line after the marker.
func removeBlock(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	lines := strings.Split(string(data), "\n")
	var filtered []string
	skip := false

	for _, line := range lines {
		if strings.Contains(line, marker) {
			skip = true
			continue
		}
		if skip && strings.TrimSpace(line) == "" {
			skip = false
			continue
		}
		if !skip {
			filtered = append(filtered, line)
		}
	}

	return os.WriteFile(filename, []byte(strings.Join(filtered, "\n")), 0644)
}

func fileContains(filename, substr string) bool {
	data, err := os.ReadFile(filename)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), substr)
}

// Integration blocks. Bash and zsh buffer history in memory until the
// session ends, which would hide the just-mistyped command from
// `wtf save`; the hooks below flush after every prompt.

const bashIntegration = marker + `
shopt -s histappend
export PROMPT_COMMAND="history -a; ${PROMPT_COMMAND}"
`

const zshIntegration = marker + `
setopt INC_APPEND_HISTORY
`

const fishIntegration = marker + `
# fish writes history incrementally; nothing extra needed.
`

const powerShellIntegration = marker + `
# PSReadLine writes history incrementally; nothing extra needed.
`
