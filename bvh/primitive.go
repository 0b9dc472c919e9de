package bvh

import "github.com/atharkes/Raytracer/types"

// The Primitive interface is implemented by all geometry that can be
// partitioned and queried by the bvh tree.
type Primitive interface {
	// Intersect the primitive with a ray. On a hit it returns a strictly
	// positive distance that does not exceed the ray length and true.
	Intersect(ray *Ray) (float32, bool)

	// IntersectAny reports whether the ray hits the primitive at all.
	IntersectAny(ray *Ray) bool

	// BBox returns the min/max extents of the primitive.
	BBox() [2]types.Vec3

	// Center returns the point used as the sort key during split
	// searches. It does not have to match the geometric centroid.
	Center() types.Vec3
}

// An Intersection pairs the primitive hit by a ray with the hit distance
// along the ray.
type Intersection struct {
	Prim     Primitive
	Distance float32
}
