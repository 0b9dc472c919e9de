package reader

import (
	"strings"
	"testing"

	"github.com/atharkes/Raytracer/scene"
	"github.com/atharkes/Raytracer/types"
)

func TestParseTriangles(t *testing.T) {
	payload := `
# a quad split into two triangles by fan triangulation
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	sc, err := Parse(strings.NewReader(payload), "quad.obj")
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Primitives) != 2 {
		t.Fatalf("expected quad to triangulate into 2 primitives; got %d", len(sc.Primitives))
	}

	tri, ok := sc.Primitives[0].(*scene.Triangle)
	if !ok {
		t.Fatalf("expected parsed primitive to be a triangle; got %T", sc.Primitives[0])
	}
	if tri.V0 != (types.Vec3{0, 0, 0}) || tri.V1 != (types.Vec3{1, 0, 0}) || tri.V2 != (types.Vec3{1, 1, 0}) {
		t.Fatalf("expected first fan triangle (v1, v2, v3); got %v %v %v", tri.V0, tri.V1, tri.V2)
	}
}

func TestParseNegativeAndSlashedIndices(t *testing.T) {
	payload := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3/1/1 -2/2/2 -1/3/3
`
	sc, err := Parse(strings.NewReader(payload), "negative.obj")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Primitives) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(sc.Primitives))
	}

	tri := sc.Primitives[0].(*scene.Triangle)
	if tri.V1 != (types.Vec3{1, 0, 0}) {
		t.Fatalf("expected negative indices to resolve from the list end; got %v", tri.V1)
	}
}

func TestParseErrors(t *testing.T) {
	specs := []struct {
		name     string
		payload  string
		expError string
	}{
		{
			"bad float",
			"v 1 not-a-float 3",
			`bad.obj: line 1: could not parse float "not-a-float"`,
		},
		{
			"missing vertex args",
			"v 1 2",
			"bad.obj: line 1: unsupported syntax for 'v'; expected 3 arguments; got 2",
		},
		{
			"short face",
			"v 0 0 0\nf 1 1",
			"bad.obj: line 2: unsupported syntax for 'f'; expected at least 3 arguments; got 2",
		},
		{
			"index out of range",
			"v 0 0 0\nf 1 2 3",
			"bad.obj: line 2: vertex index 2 out of range; 1 vertices defined",
		},
		{
			"bad index token",
			"v 0 0 0\nf 1 x 3",
			`bad.obj: line 2: could not parse vertex index "x"`,
		},
	}

	for _, spec := range specs {
		_, err := Parse(strings.NewReader(spec.payload), "bad.obj")
		if err == nil || err.Error() != spec.expError {
			t.Fatalf("[%s] expected to get %q; got %v", spec.name, spec.expError, err)
		}
	}
}

func TestSelectVertexIndex(t *testing.T) {
	if idx, err := selectVertexIndex(3, 4); err != nil || idx != 2 {
		t.Fatalf("expected positive index 3 to resolve to offset 2; got %d %v", idx, err)
	}
	if idx, err := selectVertexIndex(-1, 4); err != nil || idx != 3 {
		t.Fatalf("expected negative index -1 to resolve to offset 3; got %d %v", idx, err)
	}
	if _, err := selectVertexIndex(0, 4); err == nil {
		t.Fatal("expected index 0 to be rejected")
	}
	if _, err := selectVertexIndex(-5, 4); err == nil {
		t.Fatal("expected out of range negative index to be rejected")
	}
}
