// ABOUTME: Tests for standup configuration loading and path resolution.
// ABOUTME: Covers YAML parsing, defaults, path expansion, env overrides, and .env loading.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2389-research/standup/internal/models"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Unsetenv(%q) error: %v", key, err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	unsetEnv(t, EnvJournalFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Journal.Path != "" {
		t.Error("expected empty journal path in default config")
	}
	if cfg.Display.NewestFirst {
		t.Error("expected oldest-first listing by default")
	}

	home, _ := os.UserHomeDir()
	got, err := cfg.GetJournalPath()
	if err != nil {
		t.Fatalf("GetJournalPath() error: %v", err)
	}
	if want := filepath.Join(home, ".standup.json"); got != want {
		t.Errorf("GetJournalPath() = %q, want %q", got, want)
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	unsetEnv(t, EnvJournalFile)

	configDir := filepath.Join(tmpDir, "standup")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `journal:
  path: "~/notes/standup.json"
display:
  newest_first: true
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configData), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.Display.NewestFirst {
		t.Error("expected newest_first to be true")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, "notes", "standup.json")
	if got, err := cfg.GetJournalPath(); err != nil {
		t.Fatalf("GetJournalPath() error: %v", err)
	} else if got != expected {
		t.Errorf("GetJournalPath() = %q, want %q", got, expected)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "standup")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("journal: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if models.KindOf(err) != models.KindConfig {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Journal: JournalConfig{Path: "~/saved.json"},
		Display: DisplayConfig{NewestFirst: true},
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Journal.Path != "~/saved.json" {
		t.Errorf("expected path '~/saved.json', got %q", loaded.Journal.Path)
	}
	if !loaded.Display.NewestFirst {
		t.Error("expected newest_first to survive save/load")
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "env.json")
	t.Setenv(EnvJournalFile, envPath)

	cfg := &Config{Journal: JournalConfig{Path: "/tmp/config.json"}}
	got, err := cfg.GetJournalPath()
	if err != nil {
		t.Fatalf("GetJournalPath() error: %v", err)
	}
	if got != envPath {
		t.Errorf("GetJournalPath() = %q, want %q", got, envPath)
	}
}

func TestJournalPathProvider(t *testing.T) {
	unsetEnv(t, EnvJournalFile)
	cfg := &Config{Journal: JournalConfig{Path: "/tmp/config.json"}}

	tests := []struct {
		name     string
		override string
		expected string
	}{
		{"no override", "", "/tmp/config.json"},
		{"override", "/tmp/flag.json", "/tmp/flag.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.JournalPathProvider(tt.override)()
			if err != nil {
				t.Fatalf("provider error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("provider() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	unsetEnv(t, EnvJournalFile)

	envPath := filepath.Join(dir, "from-dotenv.json")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvJournalFile+"="+envPath+"\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, err := cfg.GetJournalPath()
	if err != nil {
		t.Fatalf("GetJournalPath() error: %v", err)
	}
	if got != envPath {
		t.Errorf("GetJournalPath() = %q, want %q", got, envPath)
	}
}

func TestMissingHomeIsConfigError(t *testing.T) {
	unsetEnv(t, "HOME")
	unsetEnv(t, "XDG_CONFIG_HOME")
	unsetEnv(t, EnvJournalFile)

	_, err := DefaultJournalPath()
	if err == nil {
		t.Fatal("expected error without a home directory")
	}
	if models.KindOf(err) != models.KindConfig {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestLoadWithoutHomeIsEmpty(t *testing.T) {
	unsetEnv(t, "HOME")
	unsetEnv(t, "XDG_CONFIG_HOME")
	unsetEnv(t, EnvJournalFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Journal.Path != "" || cfg.Display.NewestFirst {
		t.Errorf("expected empty config, got %+v", cfg)
	}

	if _, err := cfg.JournalPathProvider("")(); models.KindOf(err) != models.KindConfig {
		t.Errorf("expected config error without an override, got %v", err)
	}

	got, err := cfg.JournalPathProvider("/tmp/standup.json")()
	if err != nil {
		t.Fatalf("JournalPathProvider error: %v", err)
	}
	if got != "/tmp/standup.json" {
		t.Errorf("expected override path, got %q", got)
	}

	t.Setenv(EnvJournalFile, "/tmp/env.json")
	got, err = cfg.JournalPathProvider("")()
	if err != nil {
		t.Fatalf("JournalPathProvider error: %v", err)
	}
	if got != "/tmp/env.json" {
		t.Errorf("expected env path, got %q", got)
	}
}
