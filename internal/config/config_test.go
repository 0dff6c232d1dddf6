// # internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	content := `
source_paths = ["./src", "./lib"]

[exclude]
dirs = ["node_modules", "bin"]
files = ["*.generated.cs"]

[watch]
debounce = "1s"
rate_per_second = 10.0
burst = 20

[output]
dir = "./out"
format = "csharp"

[history]
path = "./runs.db"
enabled = true
`
	path := filepath.Join(t.TempDir(), "skelgen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.SourcePaths) != 2 || cfg.SourcePaths[0] != "./src" {
		t.Errorf("unexpected source paths: %v", cfg.SourcePaths)
	}
	if len(cfg.Exclude.Dirs) != 2 || cfg.Exclude.Dirs[0] != "node_modules" {
		t.Errorf("unexpected exclude dirs: %v", cfg.Exclude.Dirs)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.RatePerSecond != 10 || cfg.Watch.Burst != 20 {
		t.Errorf("unexpected rate settings: %v %v", cfg.Watch.RatePerSecond, cfg.Watch.Burst)
	}
	if cfg.Output.Dir != "./out" || cfg.Output.Format != "csharp" {
		t.Errorf("unexpected output settings: %+v", cfg.Output)
	}
	if cfg.History.Path != "./runs.db" || !cfg.History.Enabled {
		t.Errorf("unexpected history settings: %+v", cfg.History)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skelgen.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.SourcePaths) != 1 || cfg.SourcePaths[0] != "." {
		t.Errorf("Expected default source path '.', got %v", cfg.SourcePaths)
	}
	if cfg.Output.Dir != "./skeletons" {
		t.Errorf("Expected default output dir './skeletons', got %q", cfg.Output.Dir)
	}
	if cfg.Output.Format != "typescript" {
		t.Errorf("Expected default format typescript, got %q", cfg.Output.Format)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.RatePerSecond != 4 || cfg.Watch.Burst != 8 {
		t.Errorf("unexpected default rate settings: %v %v", cfg.Watch.RatePerSecond, cfg.Watch.Burst)
	}
	if cfg.History.Path != "./skelgen-history.db" {
		t.Errorf("Expected default history path, got %q", cfg.History.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Format != "typescript" || len(cfg.SourcePaths) != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
