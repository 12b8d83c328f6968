// Package config handles tool configuration loading and management.
package config

import "github.com/Faultbox/vphys-extract/pkg/vphys"

// Config holds all vphystool settings.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig holds input and output locations for batch mode.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir"`  // Directory scanned for .vphys files
	OutputDir string `yaml:"output_dir"` // Directory .tri files are written to
}

// ExtractConfig holds extraction behavior settings.
type ExtractConfig struct {
	CollisionGroup string `yaml:"collision_group"` // Group label shapes must carry
	MaxFaceLoop    int    `yaml:"max_face_loop"`   // Half-edge walk bound per face
	ExportGLTF     bool   `yaml:"export_gltf"`     // Also write a .glb next to each .tri
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:  "input",
			OutputDir: "output",
		},
		Extract: ExtractConfig{
			CollisionGroup: vphys.DefaultGroup,
			MaxFaceLoop:    vphys.DefaultMaxFaceLoop,
			ExportGLTF:     false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
