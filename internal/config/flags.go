package config

import "flag"

// Flags holds the command-line overrides shared by all subcommands. Register
// binds them to a subcommand's FlagSet; Apply merges the values set on the
// command line into a loaded config.
type Flags struct {
	config    *string
	debug     *bool
	output    *string
	fps       *float64
	noScene   *bool
	noQuads   *bool
	noMats    *bool
	logFile   *string
}

// Register binds the shared exporter flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	f.config = fs.String("config", "", "Path to config file")
	f.debug = fs.Bool("debug", false, "Enable debug logging")
	f.output = fs.String("output", "", "Output directory for exported files")
	f.fps = fs.Float64("fps", 0, "Animation frame rate override")
	f.noScene = fs.Bool("no-scene", false, "Skip the scene document")
	f.noQuads = fs.Bool("no-drivelines", false, "Skip the navigation quads and graph")
	f.noMats = fs.Bool("no-materials", false, "Skip the material mapping")
	f.logFile = fs.String("log-file", "", "Write logs to this file")
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f.config == nil {
		return ""
	}
	return *f.config
}

// Apply applies CLI flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.output != "" {
		cfg.Output.Dir = *f.output
	}
	if *f.fps > 0 {
		cfg.Export.FPS = float32(*f.fps)
	}
	if *f.noScene {
		cfg.Export.Scene = false
	}
	if *f.noQuads {
		cfg.Export.Drivelines = false
	}
	if *f.noMats {
		cfg.Export.Materials = false
	}
	if *f.logFile != "" {
		cfg.Logging.LogFile = *f.logFile
	}
}
