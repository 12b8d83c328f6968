// vphystool extracts collision geometry from Source 2 .vphys physics
// documents and writes flat .tri triangle files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/vphys-extract/internal/config"
	"github.com/Faultbox/vphys-extract/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// No subcommand runs a full batch pass, mirroring the original
	// drop-files-and-run workflow.
	command := "batch"
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "batch":
		cmdBatch(cfg)
	case "extract", "x":
		cmdExtract(cfg, args)
	case "info":
		cmdInfo(cfg, args)
	case "init-config":
		cmdInitConfig(cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vphystool - Source 2 vphys collision geometry extractor

Usage:
  vphystool [options] [command]

Commands:
  batch                          Extract every .vphys in the input dir (default)
  extract <file.vphys> [out.tri] Extract a single document
  info <file.vphys | file.tri>   Show counts without writing output
  init-config                    Write a default vphystool.yaml

Options:
  -config path   Config file path
  -input dir     Input directory for batch mode
  -output dir    Output directory for batch mode
  -group name    Collision group label to extract (default "default")
  -gltf          Also export a .glb per document
  -debug         Enable debug logging

Examples:
  vphystool
  vphystool -input maps -output tri batch
  vphystool extract de_dust2.vphys
  vphystool info de_dust2.tri`)
}

func cmdInitConfig(cfg *config.Config) {
	path := "vphystool.yaml"
	if err := cfg.SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
