package export

import (
	"errors"
	"testing"

	"github.com/Faultbox/vphys-extract/pkg/math"
	"github.com/Faultbox/vphys-extract/pkg/vphys"
)

func TestBuildGLTF(t *testing.T) {
	tris := []vphys.Triangle{
		{
			P1: math.Vec3{X: 0, Y: 0, Z: 0},
			P2: math.Vec3{X: 1, Y: 0, Z: 0},
			P3: math.Vec3{X: 0, Y: 1, Z: 0},
		},
		{
			P1: math.Vec3{X: 0, Y: 0, Z: 1},
			P2: math.Vec3{X: 1, Y: 0, Z: 1},
			P3: math.Vec3{X: 0, Y: 1, Z: 1},
		},
	}

	doc, err := BuildGLTF(tris)
	if err != nil {
		t.Fatalf("BuildGLTF failed: %v", err)
	}

	if len(doc.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(doc.Meshes))
	}
	if len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("got %d primitives, want 1", len(doc.Meshes[0].Primitives))
	}

	prim := doc.Meshes[0].Primitives[0]
	if _, ok := prim.Attributes["POSITION"]; !ok {
		t.Error("primitive missing POSITION attribute")
	}
	if _, ok := prim.Attributes["NORMAL"]; !ok {
		t.Error("primitive missing NORMAL attribute")
	}
	if prim.Indices == nil {
		t.Error("primitive missing indices accessor")
	}

	// 2 triangles, 3 unshared vertices each.
	posAccessor := doc.Accessors[prim.Attributes["POSITION"]]
	if posAccessor.Count != 6 {
		t.Errorf("position accessor count = %d, want 6", posAccessor.Count)
	}

	if len(doc.Nodes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Errorf("scene wiring: %d nodes, %d scene refs", len(doc.Nodes), len(doc.Scenes[0].Nodes))
	}
}

func TestBuildGLTF_Empty(t *testing.T) {
	if _, err := BuildGLTF(nil); !errors.Is(err, ErrNoTriangles) {
		t.Errorf("err = %v, want ErrNoTriangles", err)
	}
}
