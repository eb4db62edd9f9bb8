package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	testChdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "ooxtract.yaml")
	content := "mode: verbose\nformat: text\nmax_rows: 50\nworkers: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OOXTRACT_FORMAT", "yaml")
	t.Setenv("OOXTRACT_PRETTY", "true")
	t.Setenv("OOXTRACT_WORKERS", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != "verbose" || cfg.MaxRows != 50 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Format != "yaml" || !cfg.Pretty {
		t.Errorf("environment overrides not applied: %+v", cfg)
	}
	if cfg.Workers != 2 {
		t.Errorf("invalid OOXTRACT_WORKERS should keep the file value, got %d", cfg.Workers)
	}
	if cfg.SheetMapping != "auto" {
		t.Errorf("unset values should keep defaults, got %q", cfg.SheetMapping)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OOXTRACT_SHEET_MAPPING=positional\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("OOXTRACT_SHEET_MAPPING") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SheetMapping != "positional" {
		t.Errorf("SheetMapping = %q, want positional from .env", cfg.SheetMapping)
	}
}

func TestLoadErrors(t *testing.T) {
	testChdir(t, t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("mode: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("OOXTRACT_MODE", "full")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should not reject values a flag may still override: %v", err)
	}
	if cfg.Mode != "full" {
		t.Fatalf("Mode = %q, want full", cfg.Mode)
	}
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate should reject mode %q", cfg.Mode)
	}

	cfg.Mode = "light"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after override failed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"mode", func(c *Config) { c.Mode = "full" }, "unsupported mode"},
		{"mapping", func(c *Config) { c.SheetMapping = "rels" }, "unsupported sheet_mapping"},
		{"format", func(c *Config) { c.Format = "xml" }, "unsupported format"},
		{"max rows", func(c *Config) { c.MaxRows = -1 }, "max_rows"},
		{"workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "unsupported log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLevelAndOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LineBreaks = true
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v", level, err)
	}

	opts := cfg.Options(nil)
	if string(opts.Mode) != "standard" || !opts.KeepLineBreaks {
		t.Errorf("Options() = %+v", opts)
	}
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which requires Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
