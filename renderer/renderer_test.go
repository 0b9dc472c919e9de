package renderer

import (
	"testing"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/scene"
	"github.com/atharkes/Raytracer/types"
)

func testScene() *scene.Scene {
	sc := scene.NewScene()
	sc.Add(&scene.Sphere{Position: types.Vec3{0, 0, -5}, Radius: 1})
	sc.Build(bvh.DefaultOptions())
	return sc
}

func TestRenderDepthFrame(t *testing.T) {
	sc := testScene()

	opts := Options{FrameW: 32, FrameH: 32, NumWorkers: 4, MaxDist: 100}
	img, stats, err := Render(sc, opts)
	if err != nil {
		t.Fatal(err)
	}

	// The sphere sits dead ahead of the camera; the center pixel must
	// shade brighter than the background.
	center := img.RGBAAt(16, 16)
	if center.R == 0 {
		t.Fatal("expected center pixel to be lit by the sphere")
	}
	corner := img.RGBAAt(0, 0)
	if corner.R != 0 {
		t.Fatalf("expected corner pixel to miss the sphere; got shade %d", corner.R)
	}

	if len(stats.Workers) != 4 {
		t.Fatalf("expected stats for 4 workers; got %d", len(stats.Workers))
	}
	var rows uint32
	for _, worker := range stats.Workers {
		rows += worker.Rows
	}
	if rows != opts.FrameH {
		t.Fatalf("expected workers to cover all %d rows; covered %d", opts.FrameH, rows)
	}
}

func TestRenderStepsFrame(t *testing.T) {
	sc := testScene()

	img, _, err := Render(sc, Options{FrameW: 16, FrameH: 16, Mode: ModeSteps, MaxDist: 100})
	if err != nil {
		t.Fatal(err)
	}

	// Every primary ray visits at least the root node.
	if img.RGBAAt(8, 8).R == 0 {
		t.Fatal("expected the steps frame to record traversal work")
	}
}

func TestRenderValidation(t *testing.T) {
	sc := testScene()

	if _, _, err := Render(sc, Options{FrameW: 0, FrameH: 32}); err != ErrInvalidFrameDims {
		t.Fatalf("expected ErrInvalidFrameDims; got %v", err)
	}

	unbuilt := scene.NewScene()
	unbuilt.Add(&scene.Sphere{Position: types.Vec3{0, 0, -5}, Radius: 1})
	if _, _, err := Render(unbuilt, Options{FrameW: 16, FrameH: 16}); err != ErrSceneNotBuilt {
		t.Fatalf("expected ErrSceneNotBuilt; got %v", err)
	}

	sc.Camera = nil
	if _, _, err := Render(sc, Options{FrameW: 16, FrameH: 16}); err != ErrMissingCamera {
		t.Fatalf("expected ErrMissingCamera; got %v", err)
	}
}
