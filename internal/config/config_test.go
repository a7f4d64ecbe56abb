package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Dir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Output.Dir)
	}
	if !cfg.Output.Overwrite {
		t.Error("expected overwrite to be true by default")
	}

	if !cfg.Export.Scene {
		t.Error("expected scene export to be enabled by default")
	}
	if !cfg.Export.Drivelines {
		t.Error("expected driveline export to be enabled by default")
	}
	if !cfg.Export.Materials {
		t.Error("expected material export to be enabled by default")
	}
	if cfg.Export.FPS != 0 {
		t.Errorf("expected fps override 0, got %f", cfg.Export.FPS)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  dir: "/tmp/export"
  overwrite: false

export:
  scene: true
  drivelines: false
  materials: false
  fps: 30

logging:
  level: "debug"
  log_file: "export.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Dir != "/tmp/export" {
		t.Errorf("expected output dir '/tmp/export', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Overwrite {
		t.Error("expected overwrite to be false")
	}
	if cfg.Export.Drivelines {
		t.Error("expected driveline export to be disabled")
	}
	if cfg.Export.FPS != 30 {
		t.Errorf("expected fps 30, got %f", cfg.Export.FPS)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "export.log" {
		t.Errorf("expected log file 'export.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
export:
  fps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS; just verify it is a usable absolute path
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func parseTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var f Flags
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return &f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "output flag",
			args: []string{"-output", "/tmp/out"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/tmp/out" {
					t.Errorf("expected output dir '/tmp/out', got %s", cfg.Output.Dir)
				}
			},
		},
		{
			name: "fps flag",
			args: []string{"-fps", "60"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.FPS != 60 {
					t.Errorf("expected fps 60, got %f", cfg.Export.FPS)
				}
			},
		},
		{
			name: "export toggles",
			args: []string{"-no-drivelines", "-no-materials"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Drivelines {
					t.Error("expected driveline export to be disabled")
				}
				if cfg.Export.Materials {
					t.Error("expected material export to be disabled")
				}
				if !cfg.Export.Scene {
					t.Error("scene export should stay enabled")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseTestFlags(t, tt.args...)
			cfg := Default()
			f.Apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  dir: "/from/file"
export:
  fps: 24
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	f := parseTestFlags(t, "-config", configPath, "-fps", "48")

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// FPS should come from the flag, not the file.
	if cfg.Export.FPS != 48 {
		t.Errorf("expected fps 48 from flag, got %f", cfg.Export.FPS)
	}
	// Output dir should come from the file since no flag override.
	if cfg.Output.Dir != "/from/file" {
		t.Errorf("expected output dir '/from/file' from file, got %s", cfg.Output.Dir)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Output.Dir = "/saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Output.Dir != "/saved" {
		t.Errorf("expected output dir '/saved' after round trip, got %s", loaded.Output.Dir)
	}
}
