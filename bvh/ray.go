package bvh

import "github.com/atharkes/Raytracer/types"

// A Ray is a half-line used for intersection queries. Dir is expected to be
// normalized and Length caps the travel distance beyond which primitives are
// not considered hit.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
	Length float32

	// Number of tree nodes visited while answering queries with this
	// ray. Purely diagnostic; useful for visualizing traversal cost.
	Steps int
}

// Create a new ray starting at origin and travelling along dir for at most
// length units.
func NewRay(origin, dir types.Vec3, length float32) *Ray {
	return &Ray{
		Origin: origin,
		Dir:    dir.Normalize(),
		Length: length,
	}
}
