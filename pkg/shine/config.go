package shine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Config holds the mod's settings, loaded from a YAML file.
type Config struct {
	// SilentChatCommands suppresses the chat echo of every chat command,
	// regardless of per-command Silent flags.
	SilentChatCommands bool `yaml:"silent_chat_commands"`

	// ChatDirectives lists the characters accepted as a chat command
	// prefix. Empty means any non-alphanumeric leading character.
	ChatDirectives string `yaml:"chat_directives"`

	// EnableLogging toggles the per-day log files; console output is
	// unaffected.
	EnableLogging bool `yaml:"enable_logging"`

	// LogDir is the directory the per-day log files are written to.
	LogDir string `yaml:"log_dir"`

	// DateFormat is the Go time layout used to name each day's log file.
	DateFormat string `yaml:"date_format"`
}

// DefaultConfig returns the settings a fresh install runs with.
func DefaultConfig() *Config {
	return &Config{
		SilentChatCommands: false,
		ChatDirectives:     "",
		EnableLogging:      true,
		LogDir:             "logs",
		DateFormat:         "02-01-2006",
	}
}

// LoadConfig reads a YAML config file. Keys not present in the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing YAML %s: %w", path, err)
	}
	return conf, nil
}

// LoadOrCreateConfig loads path, writing a fresh default config file first
// when none exists yet.
func LoadOrCreateConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		conf := DefaultConfig()
		if err := conf.Save(path); err != nil {
			return nil, err
		}
		return conf, nil
	}
	return LoadConfig(path)
}

// Save writes the config as YAML, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsDirective reports whether r marks the start of a chat command.
func (c *Config) IsDirective(r rune) bool {
	if c == nil || c.ChatDirectives == "" {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return strings.ContainsRune(c.ChatDirectives, r)
}
