package scene

import (
	"strings"
	"testing"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

func TestSceneQueries(t *testing.T) {
	sc := NewScene()
	sc.Add(&Sphere{Position: types.Vec3{0, 0, -10}, Radius: 1})

	// Queries before the tree is built answer "no hit" instead of
	// panicking.
	ray := bvh.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, 100)
	if _, found := sc.Intersect(ray); found {
		t.Fatal("expected unbuilt scene to report no intersection")
	}

	sc.Build(bvh.DefaultOptions())
	hit, found := sc.Intersect(bvh.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, 100))
	if !found {
		t.Fatal("expected built scene to report an intersection")
	}
	if hit.Distance < 9-1e-3 || hit.Distance > 9+1e-3 {
		t.Fatalf("expected hit distance ~9; got %f", hit.Distance)
	}
	if !sc.Intersects(bvh.NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, 100)) {
		t.Fatal("expected Intersects to report a hit")
	}

	// Adding primitives invalidates the built tree.
	sc.Add(&Sphere{Position: types.Vec3{5, 0, 0}, Radius: 1})
	if sc.Tree != nil {
		t.Fatal("expected Add to invalidate the built tree")
	}
}

func TestSceneStats(t *testing.T) {
	sc := NewScene()
	sc.Add(
		&Sphere{Position: types.Vec3{0, 0, -10}, Radius: 1},
		&Plane{Normal: types.Vec3{0, 1, 0}, Offset: -2},
		&Triangle{V0: types.Vec3{0, 0, 0}, V1: types.Vec3{1, 0, 0}, V2: types.Vec3{0, 1, 0}},
	)
	sc.Build(bvh.DefaultOptions())

	stats := sc.Stats()
	for _, label := range []string{"Spheres", "Planes", "Triangles", "Nodes", "Leafs"} {
		if !strings.Contains(stats, label) {
			t.Fatalf("expected stats table to contain %q:\n%s", label, stats)
		}
	}
}

func TestCameraPrimaryRays(t *testing.T) {
	camera := NewCamera(90)
	camera.SetupProjection(1)

	// The center pixel ray points straight down the view direction.
	ray := camera.PrimaryRay(50, 50, 100, 100, 100)
	if ray.Dir[2] > -0.99 {
		t.Fatalf("expected center ray to point along -z; got %v", ray.Dir)
	}
	if ray.Length != 100 {
		t.Fatalf("expected ray length 100; got %f", ray.Length)
	}

	// The top-left pixel ray bends up and to the left.
	ray = camera.PrimaryRay(0, 0, 100, 100, 100)
	if ray.Dir[0] >= 0 || ray.Dir[1] <= 0 {
		t.Fatalf("expected top-left ray to have negative x and positive y; got %v", ray.Dir)
	}

	l := ray.Dir.Len()
	if l < 1-1e-3 || l > 1+1e-3 {
		t.Fatalf("expected ray direction to be normalized; got length %f", l)
	}
}
