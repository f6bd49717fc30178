// Package config loads gardenledger configuration from YAML files.
//
// Configuration resolves in three layers: compiled-in defaults, the global
// file at ~/.gardenledger/config.yaml, and an optional project-local
// .gardenledger/config.yaml overlay merged on top.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glenveagh/gardenledger/internal/logging"
)

// AppDirName is the per-user directory holding the ledger, config, and logs.
const AppDirName = ".gardenledger"

// Config is the root configuration document.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Ledger  LedgerConfig  `yaml:"ledger"`
}

// OutputConfig controls command output rendering.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `yaml:"format"`
	// Color enables lipgloss-styled output when stdout is a terminal.
	Color bool `yaml:"color"`
}

// LoggingConfig mirrors logging.Config in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts the YAML section into the logging package's form.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  l.Level,
		Format: l.Format,
		File:   l.File,
	}
}

// LedgerConfig locates the persisted ledger document.
type LedgerConfig struct {
	// Path overrides the default ~/.gardenledger/ledger.json location.
	Path string `yaml:"path"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New loads the global config file onto the defaults. A missing or
// unreadable global file is not an error; defaults apply.
func New() *Config {
	cfg := Default()

	globalPath, err := GlobalConfigPath()
	if err != nil {
		return cfg
	}
	if _, statErr := os.Stat(globalPath); statErr != nil {
		return cfg
	}

	data, err := os.ReadFile(globalPath)
	if err != nil {
		return cfg
	}
	// Invalid YAML in the global file falls back to defaults; commands must
	// keep working even when the config is broken.
	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

// NewWithOverlay loads the global config and shallow-merges the overlay
// file on top. An empty overlayPath behaves identically to New().
func NewWithOverlay(overlayPath string) *Config {
	cfg := New()
	if overlayPath == "" {
		return cfg
	}
	if _, err := os.Stat(overlayPath); err != nil {
		// Missing overlay is not an error, use the global config.
		return cfg
	}
	if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
		return New()
	}
	return cfg
}

// ProjectConfigPath returns the project-local overlay path, resolved
// against the current working directory. Returns "" when the working
// directory cannot be determined.
func ProjectConfigPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(wd, AppDirName, "config.yaml")
}

// AppDir returns the per-user application directory, creating nothing.
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

// GlobalConfigPath returns the path of the global config file.
func GlobalConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultLedgerPath returns the path of the ledger document, honoring the
// ledger.path override when set.
func (c *Config) DefaultLedgerPath() (string, error) {
	if c.Ledger.Path != "" {
		return c.Ledger.Path, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ledger.json"), nil
}

// EnsureLogDir creates the directory for the configured log file.
func (c *Config) EnsureLogDir() error {
	if c.Logging.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Logging.File), 0o750)
}
