package bvh

import (
	"math"

	"github.com/atharkes/Raytracer/types"
)

// An AABB is an axis-aligned bounding box. While a leaf is being built the
// box doubles as the container for the primitives it bounds; boxes merged
// for internal nodes carry no primitive list. A box with no primitives has
// a degenerate extent and must not be intersection-tested by callers.
type AABB struct {
	Min types.Vec3
	Max types.Vec3

	primitives []Primitive
}

// Create an empty bounding box with a degenerate extent.
func NewAABB() *AABB {
	return &AABB{
		Min: types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Create a bounding box that tightly encloses all primitives in the list.
// The box references the primitives; it does not copy them.
func NewAABBFromPrimitives(primitives []Primitive) *AABB {
	box := NewAABB()
	box.AddRange(primitives)
	return box
}

// The primitives owned by this box.
func (b *AABB) Primitives() []Primitive {
	return b.primitives
}

// Number of primitives owned by this box.
func (b *AABB) Count() int {
	return len(b.primitives)
}

// Add a primitive to the box, widening the extent as needed.
func (b *AABB) Add(prim Primitive) {
	b.primitives = append(b.primitives, prim)
	bbox := prim.BBox()
	b.Min = types.MinVec3(b.Min, bbox[0])
	b.Max = types.MaxVec3(b.Max, bbox[1])
}

// Add all primitives in the list to the box.
func (b *AABB) AddRange(primitives []Primitive) {
	for _, prim := range primitives {
		b.Add(prim)
	}
}

// Remove a primitive from the box and re-tighten the extent around the
// remaining primitives.
func (b *AABB) Remove(prim Primitive) {
	for idx, other := range b.primitives {
		if other == prim {
			b.primitives = append(b.primitives[:idx], b.primitives[idx+1:]...)
			break
		}
	}
	b.tighten()
}

// Recalculate the extent from scratch.
func (b *AABB) tighten() {
	b.Min = types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	b.Max = types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, prim := range b.primitives {
		bbox := prim.BBox()
		b.Min = types.MinVec3(b.Min, bbox[0])
		b.Max = types.MaxVec3(b.Max, bbox[1])
	}
}

// Merge this box with another, yielding a static box without a primitive
// list. Used for the bounds of internal nodes.
func (b *AABB) Merge(other *AABB) *AABB {
	return &AABB{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// The extent of the box along each axis.
func (b *AABB) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Surface area of the box.
func (b *AABB) SurfaceArea() float32 {
	size := b.Size()
	return 2 * (size[0]*size[1] + size[1]*size[2] + size[2]*size[0])
}

// SAH cost of intersecting this box as a leaf: a linear scan over all
// owned primitives.
func (b *AABB) LeafCost(opts *Options) float32 {
	return opts.IntersectionCost * float32(len(b.primitives))
}

// Slab test of the ray against the box extent. Boxes entirely behind the
// ray origin or beyond the ray length are rejected.
func (b *AABB) Intersect(ray *Ray) bool {
	var tMin float32 = 0
	tMax := ray.Length

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		dir := ray.Dir[axis]

		// Rays parallel to the slab only pass if the origin lies
		// between the two planes.
		if dir > -1e-8 && dir < 1e-8 {
			if origin < b.Min[axis] || origin > b.Max[axis] {
				return false
			}
			continue
		}

		inv := 1.0 / dir
		t1 := (b.Min[axis] - origin) * inv
		t2 := (b.Max[axis] - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Linearly scan the owned primitives and return the nearest hit along the
// ray, if any.
func (b *AABB) IntersectPrimitives(ray *Ray) (Intersection, bool) {
	var best Intersection
	var found bool
	for _, prim := range b.primitives {
		dist, hit := prim.Intersect(ray)
		if hit && (!found || dist < best.Distance) {
			best = Intersection{Prim: prim, Distance: dist}
			found = true
		}
	}
	return best, found
}

// Scan the owned primitives and report whether any of them is hit,
// stopping at the first hit found.
func (b *AABB) IntersectPrimitivesAny(ray *Ray) bool {
	for _, prim := range b.primitives {
		if prim.IntersectAny(ray) {
			return true
		}
	}
	return false
}
