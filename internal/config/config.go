// Package config provides configuration management for WTF
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mewisme/wtf/internal/typos"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Typos    TyposConfig    `mapstructure:"typos"`
	Match    MatchConfig    `mapstructure:"match"`
	AI       AIConfig       `mapstructure:"ai"`
	UI       UIConfig       `mapstructure:"ui"`
	Database DatabaseConfig `mapstructure:"database"`
	History  HistoryConfig  `mapstructure:"history"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AppConfig holds application settings
type AppConfig struct {
	Name             string `mapstructure:"name"`
	Version          string `mapstructure:"version"`
	Debug            bool   `mapstructure:"debug"`
	AutoMode         bool   `mapstructure:"auto_mode"`
	FirstRunComplete bool   `mapstructure:"first_run_complete"`
}

// TyposConfig holds user-defined typo corrections. Custom entries take
// priority over the built-in table.
type TyposConfig struct {
	Custom []typos.Entry `mapstructure:"custom"`
}

// MatchConfig holds match engine settings
type MatchConfig struct {
	Threshold      float64 `mapstructure:"threshold"`
	MaxSuggestions int     `mapstructure:"max_suggestions"`
	Parallel       bool    `mapstructure:"parallel"`
}

// AIConfig holds AI fallback settings
type AIConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Model          string `mapstructure:"model"`
	GoogleAPIKey   string `mapstructure:"google_api_key"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds UI settings
type UIConfig struct {
	Color            bool `mapstructure:"color"`
	Interactive      bool `mapstructure:"interactive"`
	ShowExplanations bool `mapstructure:"show_explanations"`
}

// DatabaseConfig holds correction store settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	MaxSize int    `mapstructure:"max_size"`
}

// HistoryConfig holds shell history settings
type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
}

var (
	globalConfig *Config
	configPath   string
)

// Load loads the configuration from file and environment variables
func Load(path string) (*Config, error) {
	if path == "" {
		path = getDefaultConfigPath()
	}
	configPath = path

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	setDefaults()

	viper.SetEnvPrefix("WTF")
	viper.AutomaticEnv()

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := createDefaultConfig(path); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read created config: %w", err)
			}
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	expandPaths(&cfg)

	globalConfig = &cfg
	return &cfg, nil
}

// Get returns the global configuration instance
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load("")
		if err != nil {
			return &Config{}
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

// Path returns the config file path in use
func Path() string {
	if configPath == "" {
		return getDefaultConfigPath()
	}
	return configPath
}

// Save saves the current configuration to file
func Save() error {
	if globalConfig == nil {
		return fmt.Errorf("no configuration to save")
	}

	viper.Set("app", globalConfig.App)
	viper.Set("typos", globalConfig.Typos)
	viper.Set("match", globalConfig.Match)
	viper.Set("ai", globalConfig.AI)
	viper.Set("ui", globalConfig.UI)
	viper.Set("database", globalConfig.Database)
	viper.Set("history", globalConfig.History)
	viper.Set("logging", globalConfig.Logging)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// AddTypo adds or replaces a custom typo correction and persists it.
func (c *Config) AddTypo(wrong, correct string) error {
	wrong = strings.TrimSpace(wrong)
	correct = strings.TrimSpace(correct)
	if wrong == "" || correct == "" {
		return fmt.Errorf("both the typo and its correction are required")
	}
	if wrong == correct {
		return fmt.Errorf("%q already is the correction", wrong)
	}

	for i, e := range c.Typos.Custom {
		if e.Wrong == wrong {
			c.Typos.Custom[i].Correct = correct
			return Save()
		}
	}
	c.Typos.Custom = append(c.Typos.Custom, typos.Entry{Wrong: wrong, Correct: correct})
	return Save()
}

// RemoveTypo removes a custom typo correction. It reports whether the
// entry existed.
func (c *Config) RemoveTypo(wrong string) (bool, error) {
	wrong = strings.TrimSpace(wrong)
	for i, e := range c.Typos.Custom {
		if e.Wrong == wrong {
			c.Typos.Custom = append(c.Typos.Custom[:i], c.Typos.Custom[i+1:]...)
			return true, Save()
		}
	}
	return false, nil
}

// ClearTypos removes all custom typo corrections.
func (c *Config) ClearTypos() error {
	c.Typos.Custom = nil
	return Save()
}

// SetAutoMode toggles automatic execution of the top suggestion.
func (c *Config) SetAutoMode(on bool) error {
	c.App.AutoMode = on
	return Save()
}

// SetAIMode toggles the AI fallback.
func (c *Config) SetAIMode(on bool) error {
	c.AI.Enabled = on
	return Save()
}

// SetAPIKey stores the Google API key used by the AI fallback.
func (c *Config) SetAPIKey(key string) error {
	c.AI.GoogleAPIKey = strings.TrimSpace(key)
	return Save()
}

// APIKey returns the Google API key, preferring the environment.
func (c *Config) APIKey() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return c.AI.GoogleAPIKey
}

// MarkFirstRunComplete records that the first-run setup has happened.
func (c *Config) MarkFirstRunComplete() error {
	if c.App.FirstRunComplete {
		return nil
	}
	c.App.FirstRunComplete = true
	return Save()
}

func setDefaults() {
	viper.SetDefault("app.name", "wtf")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.auto_mode", false)
	viper.SetDefault("app.first_run_complete", false)

	viper.SetDefault("match.threshold", 0.85)
	viper.SetDefault("match.max_suggestions", 5)
	viper.SetDefault("match.parallel", true)

	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.model", "gemini-2.0-flash")
	viper.SetDefault("ai.endpoint", "")
	viper.SetDefault("ai.timeout_seconds", 15)

	viper.SetDefault("ui.color", true)
	viper.SetDefault("ui.interactive", true)
	viper.SetDefault("ui.show_explanations", true)

	viper.SetDefault("database.path", "~/.wtf/data")
	viper.SetDefault("database.max_size", 50)

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.max_entries", 1000)

	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.file", "~/.wtf/logs/wtf.log")
	viper.SetDefault("logging.max_size", 5)
	viper.SetDefault("logging.max_backups", 3)
}

func createDefaultConfig(path string) error {
	defaultConfig := `# WTF - command typo fixer
# Default configuration file

app:
  name: "wtf"
  version: "1.0.0"
  debug: false
  auto_mode: false
  first_run_complete: false

# Custom typo corrections checked before the built-in table.
# typos:
#   custom:
#     - wrong: "gti"
#       correct: "git"
typos:
  custom: []

match:
  threshold: 0.85
  max_suggestions: 5
  parallel: true

ai:
  enabled: false
  model: "gemini-2.0-flash"
  google_api_key: ""
  timeout_seconds: 15

ui:
  color: true
  interactive: true
  show_explanations: true

database:
  path: "~/.wtf/data"
  max_size: 50

history:
  enabled: true
  max_entries: 1000

logging:
  level: "warn"
  file: "~/.wtf/logs/wtf.log"
  max_size: 5
  max_backups: 3
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

func expandPaths(cfg *Config) {
	homeDir, _ := os.UserHomeDir()

	if cfg.Database.Path != "" {
		cfg.Database.Path = expandPath(cfg.Database.Path, homeDir)
	}
	if cfg.Logging.File != "" {
		cfg.Logging.File = expandPath(cfg.Logging.File, homeDir)
	}
}

// expandPath expands ~ and environment variables in a path
func expandPath(path, homeDir string) string {
	if len(path) > 0 && path[0] == '~' {
		path = filepath.Join(homeDir, path[1:])
	}
	return os.ExpandEnv(path)
}

func getDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wtf.yaml"
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wtf", "config.yaml")
	}

	return filepath.Join(homeDir, ".config", "wtf", "config.yaml")
}

// GetDataDir returns the data directory path
func GetDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wtf"
	}
	return filepath.Join(homeDir, ".wtf")
}

// EnsureDirs ensures all necessary directories exist
func EnsureDirs() error {
	dataDir := GetDataDir()
	dirs := []string{
		dataDir,
		filepath.Join(dataDir, "data"),
		filepath.Join(dataDir, "logs"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
