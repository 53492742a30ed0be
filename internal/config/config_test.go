package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/slatekore/slatekore/internal/prereq"
)

func TestGetPaths_XDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	if want := filepath.Join(xdg, "slatekore"); paths.UserConfigDir != want {
		t.Errorf("UserConfigDir = %v, want %v", paths.UserConfigDir, want)
	}
	if want := filepath.Join(xdg, "slatekore", "config.yaml"); paths.ConfigFile != want {
		t.Errorf("ConfigFile = %v, want %v", paths.ConfigFile, want)
	}
}

func TestGetPaths_DefaultsToHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "slatekore", "config.yaml"); paths.ConfigFile != want {
		t.Errorf("ConfigFile = %v, want %v", paths.ConfigFile, want)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `agent:
  binary: gemini-nightly
  timeout: 2s
plugins: [terminal, dataview]
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Agent.Binary != "gemini-nightly" {
		t.Errorf("Binary = %q", cfg.Agent.Binary)
	}
	if cfg.Agent.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Agent.Timeout)
	}
	// Untouched keys keep their defaults.
	if cfg.Agent.VersionFlag != prereq.DefaultVersionFlag {
		t.Errorf("VersionFlag = %q, want default", cfg.Agent.VersionFlag)
	}
	if !reflect.DeepEqual(cfg.Plugins, []string{"terminal", "dataview"}) {
		t.Errorf("Plugins = %v", cfg.Plugins)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "agent: [", "failed to parse"},
		{"empty binary", "agent:\n  binary: \"\"\n", "binary"},
		{"timeout too long", "agent:\n  timeout: 2h\n", "timeout"},
		{"unknown log level", "log:\n  level: chatty\n", "level"},
		{"unknown log format", "log:\n  format: xml\n", "format"},
		{"blank plugin", "plugins: [terminal, \"\"]\n", "plugins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Checker(t *testing.T) {
	cfg := Default()
	cfg.Agent.Binary = "gemini-beta"
	cfg.Agent.Timeout = 3 * time.Second
	cfg.Plugins = []string{"calendar"}

	ch := cfg.Checker()
	if ch.Binary != "gemini-beta" || ch.Timeout != 3*time.Second {
		t.Errorf("Checker() = %+v", ch)
	}
	if !reflect.DeepEqual(ch.Plugins, []string{"calendar"}) {
		t.Errorf("Plugins = %v", ch.Plugins)
	}
	if ch.Runner == nil || ch.LookPath == nil {
		t.Error("Checker() left Runner or LookPath nil")
	}
}

func TestConfig_Logger(t *testing.T) {
	cfg := Default()

	lc, err := cfg.Logger(false)
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	if lc.Level != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", lc.Level)
	}

	lc, err = cfg.Logger(true)
	if err != nil {
		t.Fatalf("Logger(verbose) error = %v", err)
	}
	if lc.Level != slog.LevelDebug {
		t.Errorf("verbose Level = %v, want debug", lc.Level)
	}
	if lc.AddSource {
		t.Error("AddSource = true by default")
	}

	cfg.Log.AddSource = true
	lc, err = cfg.Logger(false)
	if err != nil {
		t.Fatal(err)
	}
	if !lc.AddSource {
		t.Error("log.add_source was not passed to the logger")
	}
}

func TestLoad_AddSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  add_source: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Log.AddSource {
		t.Error("Log.AddSource = false, want true")
	}
}

func TestConfig_PluginNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("plugins: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.PluginNames(), prereq.DefaultPlugins) {
		t.Errorf("PluginNames() = %v, want defaults", cfg.PluginNames())
	}
	if !reflect.DeepEqual(cfg.Checker().Plugins, prereq.DefaultPlugins) {
		t.Errorf("Checker().Plugins = %v, want defaults", cfg.Checker().Plugins)
	}
}
