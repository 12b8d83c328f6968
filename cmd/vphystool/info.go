package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/vphys-extract/internal/config"
	"github.com/Faultbox/vphys-extract/pkg/kv3"
	"github.com/Faultbox/vphys-extract/pkg/math"
	"github.com/Faultbox/vphys-extract/pkg/vphys"
)

// cmdInfo reports counts for a .vphys document or a .tri artifact
// without writing anything.
func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vphystool info <file.vphys | file.tri>")
		os.Exit(1)
	}

	path := args[0]
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tri":
		err = triInfo(path)
	default:
		err = vphysInfo(cfg, path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func vphysInfo(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := kv3.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	res := vphys.Extract(doc, vphys.Options{
		Group:       cfg.Extract.CollisionGroup,
		MaxFaceLoop: cfg.Extract.MaxFaceLoop,
	})

	fmt.Printf("%s\n", path)
	fmt.Printf("  Properties:  %d\n", doc.Len())
	fmt.Printf("  Hulls:       %d total, %d in group %q\n", res.HullsTotal, res.HullsUsed, cfg.Extract.CollisionGroup)
	fmt.Printf("  Meshes:      %d total, %d in group %q\n", res.MeshesTotal, res.MeshesUsed, cfg.Extract.CollisionGroup)
	fmt.Printf("  Triangles:   %d (%d bytes as .tri)\n", len(res.Triangles), len(res.Triangles)*vphys.TriangleSize)
	if res.SkippedShapes > 0 || res.SkippedFaces > 0 || res.SkippedTriples > 0 {
		fmt.Printf("  Skipped:     %d shapes, %d hull faces, %d mesh triples\n",
			res.SkippedShapes, res.SkippedFaces, res.SkippedTriples)
	}
	return nil
}

func triInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tris, err := vphys.ReadTri(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  Triangles: %d\n", len(tris))
	if len(tris) == 0 {
		return nil
	}

	lo, hi := boundingBox(tris)
	fmt.Printf("  Bounds:    min (%g, %g, %g) max (%g, %g, %g)\n",
		lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	return nil
}

func boundingBox(tris []vphys.Triangle) (math.Vec3, math.Vec3) {
	lo, hi := tris[0].P1, tris[0].P1
	for _, tri := range tris {
		for _, p := range []math.Vec3{tri.P1, tri.P2, tri.P3} {
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}
	return lo, hi
}
