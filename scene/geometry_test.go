package scene

import (
	"testing"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

func TestSphereIntersect(t *testing.T) {
	sphere := &Sphere{Position: types.Vec3{0, 0, 0}, Radius: 1}

	ray := bvh.NewRay(types.Vec3{-5, 0, 0}, types.Vec3{1, 0, 0}, 100)
	dist, hit := sphere.Intersect(ray)
	if !hit {
		t.Fatal("expected ray to hit the sphere")
	}
	if dist < 4-1e-3 || dist > 4+1e-3 {
		t.Fatalf("expected hit distance ~4; got %f", dist)
	}

	if _, hit = sphere.Intersect(bvh.NewRay(types.Vec3{-5, 3, 0}, types.Vec3{1, 0, 0}, 100)); hit {
		t.Fatal("expected offset ray to miss the sphere")
	}

	if _, hit = sphere.Intersect(bvh.NewRay(types.Vec3{-5, 0, 0}, types.Vec3{1, 0, 0}, 2)); hit {
		t.Fatal("expected short ray to miss the sphere")
	}

	// A ray starting inside the sphere hits the far shell.
	dist, hit = sphere.Intersect(bvh.NewRay(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0}, 100))
	if !hit || dist < 1-1e-3 || dist > 1+1e-3 {
		t.Fatalf("expected interior ray to exit at distance ~1; got %f %t", dist, hit)
	}

	bbox := sphere.BBox()
	if bbox[0] != (types.Vec3{-1, -1, -1}) || bbox[1] != (types.Vec3{1, 1, 1}) {
		t.Fatalf("expected sphere bounds [-1,1]^3; got %v %v", bbox[0], bbox[1])
	}
	if sphere.Center() != sphere.Position {
		t.Fatal("expected sphere center to equal its position")
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := &Plane{Normal: types.Vec3{0, 1, 0}, Offset: 0}

	dist, hit := plane.Intersect(bvh.NewRay(types.Vec3{0, 5, 0}, types.Vec3{0, -1, 0}, 100))
	if !hit || dist != 5 {
		t.Fatalf("expected plane hit at distance 5; got %f %t", dist, hit)
	}

	if _, hit = plane.Intersect(bvh.NewRay(types.Vec3{0, 5, 0}, types.Vec3{1, 0, 0}, 100)); hit {
		t.Fatal("expected parallel ray to miss the plane")
	}

	if _, hit = plane.Intersect(bvh.NewRay(types.Vec3{0, 5, 0}, types.Vec3{0, 1, 0}, 100)); hit {
		t.Fatal("expected ray pointing away to miss the plane")
	}
}

func TestTriangleIntersect(t *testing.T) {
	tri := &Triangle{
		V0: types.Vec3{0, 0, 0},
		V1: types.Vec3{1, 0, 0},
		V2: types.Vec3{0, 1, 0},
	}

	dist, hit := tri.Intersect(bvh.NewRay(types.Vec3{0.2, 0.2, -5}, types.Vec3{0, 0, 1}, 100))
	if !hit || dist < 5-1e-3 || dist > 5+1e-3 {
		t.Fatalf("expected triangle hit at distance ~5; got %f %t", dist, hit)
	}

	if _, hit = tri.Intersect(bvh.NewRay(types.Vec3{0.9, 0.9, -5}, types.Vec3{0, 0, 1}, 100)); hit {
		t.Fatal("expected ray outside the triangle to miss")
	}

	// Both winding directions are hit.
	if _, hit = tri.Intersect(bvh.NewRay(types.Vec3{0.2, 0.2, 5}, types.Vec3{0, 0, -1}, 100)); !hit {
		t.Fatal("expected back-face ray to hit the triangle")
	}

	bbox := tri.BBox()
	if bbox[0] != (types.Vec3{0, 0, 0}) || bbox[1] != (types.Vec3{1, 1, 0}) {
		t.Fatalf("expected triangle bounds (0,0,0)-(1,1,0); got %v %v", bbox[0], bbox[1])
	}

	center := tri.Center()
	exp := float32(1.0 / 3.0)
	if center[0] != exp || center[1] != exp || center[2] != 0 {
		t.Fatalf("expected triangle centroid (1/3, 1/3, 0); got %v", center)
	}
}
