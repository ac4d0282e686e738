// ABOUTME: Configuration management for standup with YAML config loading.
// ABOUTME: Resolves the journal file path from flags, environment, config file, and ~ expansion.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/2389-research/standup/internal/models"
)

// EnvJournalFile overrides the configured journal path when set.
const EnvJournalFile = "STANDUP_FILE"

// DefaultJournalFile is the journal file name inside the home directory.
const DefaultJournalFile = ".standup.json"

// Config stores standup configuration loaded from ~/.config/standup/config.yaml.
type Config struct {
	Journal JournalConfig `yaml:"journal"`
	Display DisplayConfig `yaml:"display"`
}

// JournalConfig holds the optional journal file location.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig holds listing preferences.
type DisplayConfig struct {
	NewestFirst bool `yaml:"newest_first"`
}

// GetJournalPath returns the journal file path.
// STANDUP_FILE wins over the config file, which wins over ~/.standup.json.
func (c *Config) GetJournalPath() (string, error) {
	if env := os.Getenv(EnvJournalFile); env != "" {
		return ExpandPath(env)
	}
	if c.Journal.Path != "" {
		return ExpandPath(c.Journal.Path)
	}
	return DefaultJournalPath()
}

// JournalPathProvider returns a resolver for the journal path.
// A non-empty override takes precedence over everything else.
func (c *Config) JournalPathProvider(override string) func() (string, error) {
	return func() (string, error) {
		if override != "" {
			return ExpandPath(override)
		}
		return c.GetJournalPath()
	}
}

// DefaultJournalPath returns ~/.standup.json.
func DefaultJournalPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultJournalFile), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "standup", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", models.ConfigError("get home directory", err)
	}
	return home, nil
}

// LoadEnv reads a .env file from the working directory if one exists.
// Variables already present in the environment are left untouched.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads config from disk. Returns default config if file doesn't exist,
// or if there is no home directory to hold one.
func Load() (*Config, error) {
	LoadEnv()

	path, err := GetConfigPath()
	if err != nil {
		// --file and STANDUP_FILE still work; the path provider reports
		// the missing home directory only when nothing overrides it.
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, models.ConfigError("read config", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, models.ConfigError("parse config", fmt.Errorf("%s: %w", path, err))
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
