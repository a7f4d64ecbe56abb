// Package config handles exporter configuration loading and management.
package config

// Config holds all exporter settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds output location settings.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Target directory for exported files
	Overwrite bool   `yaml:"overwrite"` // Replace existing output files
}

// ExportConfig holds per-run export toggles.
type ExportConfig struct {
	Scene      bool    `yaml:"scene"`      // Scene/node document
	Drivelines bool    `yaml:"drivelines"` // Navigation quads and graph
	Materials  bool    `yaml:"materials"`  // Material mapping document
	FPS        float32 `yaml:"fps"`        // Frame rate override, 0 keeps the scene value
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       ".",
			Overwrite: true,
		},
		Export: ExportConfig{
			Scene:      true,
			Drivelines: true,
			Materials:  true,
			FPS:        0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
