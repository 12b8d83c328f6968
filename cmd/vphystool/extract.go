package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/vphys-extract/internal/config"
	"github.com/Faultbox/vphys-extract/internal/export"
	"github.com/Faultbox/vphys-extract/internal/logger"
	"github.com/Faultbox/vphys-extract/pkg/kv3"
	"github.com/Faultbox/vphys-extract/pkg/vphys"
)

// cmdBatch processes every .vphys document in the input directory.
// Individual failures are logged and skipped; the pass always
// completes.
func cmdBatch(cfg *config.Config) {
	inputDir := cfg.Paths.InputDir
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(inputDir, 0755); err != nil {
			logger.Log.Error("creating input directory", zap.String("dir", inputDir), zap.Error(err))
			return
		}
		logger.Log.Info("created input directory, place .vphys files there",
			zap.String("dir", inputDir))
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.vphys"))
	if err != nil {
		logger.Log.Error("scanning input directory", zap.Error(err))
		return
	}
	if len(files) == 0 {
		logger.Log.Info("no .vphys files found", zap.String("dir", inputDir))
		return
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0755); err != nil {
		logger.Log.Error("creating output directory",
			zap.String("dir", cfg.Paths.OutputDir), zap.Error(err))
		return
	}

	for _, inPath := range files {
		outPath := filepath.Join(cfg.Paths.OutputDir, stem(inPath)+".tri")
		if err := processFile(cfg, inPath, outPath); err != nil {
			logger.Log.Error("processing document failed",
				zap.String("file", inPath), zap.Error(err))
		}
	}
}

// cmdExtract processes a single document.
func cmdExtract(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vphystool extract <file.vphys> [out.tri]")
		os.Exit(1)
	}

	inPath := args[0]
	outPath := stem(inPath) + ".tri"
	if len(args) > 1 {
		outPath = args[1]
	}

	if err := processFile(cfg, inPath, outPath); err != nil {
		logger.Log.Error("processing document failed",
			zap.String("file", inPath), zap.Error(err))
		os.Exit(1)
	}
}

// processFile runs the extraction pipeline for one document and
// writes its output artifacts. A document without qualifying
// triangles produces no file at all.
func processFile(cfg *config.Config, inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	doc, err := kv3.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	res := vphys.Extract(doc, vphys.Options{
		Group:       cfg.Extract.CollisionGroup,
		MaxFaceLoop: cfg.Extract.MaxFaceLoop,
	})

	logger.Log.Info("document processed",
		zap.String("file", inPath),
		zap.Int("hulls_total", res.HullsTotal),
		zap.Int("hulls_used", res.HullsUsed),
		zap.Int("meshes_total", res.MeshesTotal),
		zap.Int("meshes_used", res.MeshesUsed),
		zap.Int("triangles", len(res.Triangles)),
	)
	if res.SkippedShapes > 0 || res.SkippedFaces > 0 || res.SkippedTriples > 0 {
		logger.Log.Warn("entries skipped",
			zap.String("file", inPath),
			zap.Int("shapes", res.SkippedShapes),
			zap.Int("hull_faces", res.SkippedFaces),
			zap.Int("mesh_triples", res.SkippedTriples),
		)
	}

	if len(res.Triangles) == 0 {
		logger.Log.Info("no triangles found, skipping file write",
			zap.String("file", inPath))
		return nil
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer out.Close()

	if err := vphys.WriteTri(out, res.Triangles); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	logger.Log.Info("wrote triangles", zap.String("file", outPath),
		zap.Int("bytes", len(res.Triangles)*vphys.TriangleSize))

	if cfg.Extract.ExportGLTF {
		glbPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".glb"
		if err := export.GLTF(glbPath, res.Triangles); err != nil {
			return fmt.Errorf("exporting %s: %w", glbPath, err)
		}
		logger.Log.Info("wrote glTF", zap.String("file", glbPath))
	}

	return nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
