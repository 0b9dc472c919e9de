package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/atharkes/Raytracer/bvh"
)

// A Scene owns a set of primitives and the camera observing them. Queries
// are answered by a bvh tree built over the primitive set; the tree must
// be rebuilt from scratch whenever the primitive set changes.
type Scene struct {
	Primitives []bvh.Primitive
	Camera     *Camera
	Tree       *bvh.Tree
}

func NewScene() *Scene {
	return &Scene{
		Camera: NewCamera(45),
	}
}

// Add primitives to the scene. Adding primitives invalidates any
// previously built tree.
func (sc *Scene) Add(primitives ...bvh.Primitive) {
	sc.Primitives = append(sc.Primitives, primitives...)
	sc.Tree = nil
}

// Build the bvh tree over the current primitive set.
func (sc *Scene) Build(opts bvh.Options) {
	sc.Tree = bvh.Build(sc.Primitives, opts)
}

// Intersect returns the nearest intersection of the ray with the scene
// geometry. Scenes without a built tree answer "no hit".
func (sc *Scene) Intersect(ray *bvh.Ray) (bvh.Intersection, bool) {
	if sc.Tree == nil {
		return bvh.Intersection{}, false
	}
	return sc.Tree.Intersect(ray)
}

// Intersects reports whether the ray hits any scene geometry.
func (sc *Scene) Intersects(ray *bvh.Ray) bool {
	if sc.Tree == nil {
		return false
	}
	return sc.Tree.Intersects(ray)
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	var spheres, planes, triangles, other int
	for _, prim := range sc.Primitives {
		switch prim.(type) {
		case *Sphere:
			spheres++
		case *Plane:
			planes++
		case *Triangle:
			triangles++
		default:
			other++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count"})
	table.Append([]string{"Geometry", "---", fmt.Sprintf("%d", len(sc.Primitives))})
	table.Append([]string{"", "Spheres", fmt.Sprintf("%d", spheres)})
	table.Append([]string{"", "Planes", fmt.Sprintf("%d", planes)})
	table.Append([]string{"", "Triangles", fmt.Sprintf("%d", triangles)})
	if other > 0 {
		table.Append([]string{"", "Other", fmt.Sprintf("%d", other)})
	}

	if sc.Tree != nil {
		stats := sc.Tree.Stats()
		table.Append([]string{" ", " ", " "})
		table.Append([]string{"BVH", "---", ""})
		table.Append([]string{"", "Nodes", fmt.Sprintf("%d", stats.Nodes)})
		table.Append([]string{"", "Leafs", fmt.Sprintf("%d", stats.Leafs)})
		table.Append([]string{"", "Max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	}

	table.Render()
	return buf.String()
}
