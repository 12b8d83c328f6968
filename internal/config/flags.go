package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagInput  = flag.String("input", "", "Input directory with .vphys files")
	flagOutput = flag.String("output", "", "Output directory for .tri files")
	flagGroup  = flag.String("group", "", "Collision group label to extract")
	flagGLTF   = flag.Bool("gltf", false, "Also export a .glb per document")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagInput != "" {
		cfg.Paths.InputDir = *flagInput
	}
	if *flagOutput != "" {
		cfg.Paths.OutputDir = *flagOutput
	}
	if *flagGroup != "" {
		cfg.Extract.CollisionGroup = *flagGroup
	}
	if *flagGLTF {
		cfg.Extract.ExportGLTF = true
	}
}
