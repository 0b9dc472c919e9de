package scene

import (
	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

// A Triangle primitive defined by its three vertices in counter-clockwise
// winding order.
type Triangle struct {
	V0 types.Vec3
	V1 types.Vec3
	V2 types.Vec3
}

// Intersect the triangle with a ray using the Moeller-Trumbore algorithm.
// Both faces of the triangle are considered hit.
func (tr *Triangle) Intersect(ray *bvh.Ray) (float32, bool) {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)

	pvec := ray.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -1e-8 && det < 1e-8 {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(tr.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t < hitEpsilon || t > ray.Length {
		return 0, false
	}
	return t, true
}

// IntersectAny reports whether the ray hits the triangle.
func (tr *Triangle) IntersectAny(ray *bvh.Ray) bool {
	_, hit := tr.Intersect(ray)
	return hit
}

// BBox returns the min/max extents of the triangle.
func (tr *Triangle) BBox() [2]types.Vec3 {
	min := types.MinVec3(types.MinVec3(tr.V0, tr.V1), tr.V2)
	max := types.MaxVec3(types.MaxVec3(tr.V0, tr.V1), tr.V2)
	return [2]types.Vec3{min, max}
}

// Center returns the triangle centroid.
func (tr *Triangle) Center() types.Vec3 {
	return tr.V0.Add(tr.V1).Add(tr.V2).Mul(1.0 / 3.0)
}
