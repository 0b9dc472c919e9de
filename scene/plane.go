package scene

import (
	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

// Extent assigned to the otherwise unbounded plane so it can participate
// in bvh construction.
const planeBound float32 = 1e4

// A Plane primitive described by a unit normal and its distance from the
// origin along that normal.
type Plane struct {
	Normal types.Vec3
	Offset float32
}

// Intersect the plane with a ray.
func (p *Plane) Intersect(ray *bvh.Ray) (float32, bool) {
	denom := p.Normal.Dot(ray.Dir)
	if denom > -1e-8 && denom < 1e-8 {
		return 0, false
	}

	t := (p.Offset - p.Normal.Dot(ray.Origin)) / denom
	if t < hitEpsilon || t > ray.Length {
		return 0, false
	}
	return t, true
}

// IntersectAny reports whether the ray hits the plane.
func (p *Plane) IntersectAny(ray *bvh.Ray) bool {
	_, hit := p.Intersect(ray)
	return hit
}

// BBox returns a large finite extent standing in for the infinite plane.
func (p *Plane) BBox() [2]types.Vec3 {
	return [2]types.Vec3{
		{-planeBound, -planeBound, -planeBound},
		{planeBound, planeBound, planeBound},
	}
}

// Center returns the projection of the world origin onto the plane.
func (p *Plane) Center() types.Vec3 {
	return p.Normal.Mul(p.Offset)
}
