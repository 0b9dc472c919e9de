package scene

import (
	"math"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

// Minimum hit distance; hits closer than this are treated as self
// intersections and discarded.
const hitEpsilon float32 = 1e-4

// A Sphere primitive.
type Sphere struct {
	Position types.Vec3
	Radius   float32
}

// Intersect the sphere with a ray and return the distance to the nearest
// hit within the ray length.
func (s *Sphere) Intersect(ray *bvh.Ray) (float32, bool) {
	toCenter := s.Position.Sub(ray.Origin)
	tCenter := toCenter.Dot(ray.Dir)
	distSq := toCenter.Dot(toCenter) - tCenter*tCenter
	radSq := s.Radius * s.Radius
	if distSq > radSq {
		return 0, false
	}

	half := float32(math.Sqrt(float64(radSq - distSq)))
	t := tCenter - half
	if t < hitEpsilon {
		// The ray starts inside the sphere; use the far intersection.
		t = tCenter + half
	}
	if t < hitEpsilon || t > ray.Length {
		return 0, false
	}
	return t, true
}

// IntersectAny reports whether the ray hits the sphere.
func (s *Sphere) IntersectAny(ray *bvh.Ray) bool {
	_, hit := s.Intersect(ray)
	return hit
}

// BBox returns the min/max extents of the sphere.
func (s *Sphere) BBox() [2]types.Vec3 {
	r := types.Vec3{s.Radius, s.Radius, s.Radius}
	return [2]types.Vec3{s.Position.Sub(r), s.Position.Add(r)}
}

// Center returns the sphere origin.
func (s *Sphere) Center() types.Vec3 {
	return s.Position
}
