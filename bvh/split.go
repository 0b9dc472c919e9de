package bvh

import (
	"math"

	"github.com/atharkes/Raytracer/types"
)

// Unit vectors for the three split axes.
var axisDirections = [3]types.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// A Split is a candidate partition of a node's primitive set into two
// boxes along a single axis. Splits are ephemeral: they only live for the
// duration of a split search.
type Split struct {
	// Unit vector along the split axis; recorded by the node that
	// accepts the split so traversal can order its children.
	Direction types.Vec3

	Left  *AABB
	Right *AABB
}

// SAH cost of traversing this split instead of leaving the parent box as
// a leaf: one traversal step plus the intersection cost of each side
// weighted by the probability of a ray striking it.
//
// Parents with a degenerate or zero surface area yield the worst possible
// cost so the node stays a leaf instead of propagating NaNs.
func (s *Split) Cost(parent *AABB, opts *Options) float32 {
	parentArea := parent.SurfaceArea()
	if parentArea <= 0 || math.IsNaN(float64(parentArea)) || math.IsInf(float64(parentArea), 0) {
		return math.MaxFloat32
	}

	probLeft := s.Left.SurfaceArea() / parentArea
	probRight := s.Right.SurfaceArea() / parentArea
	return opts.TraversalCost +
		probLeft*float32(s.Left.Count())*opts.IntersectionCost +
		probRight*float32(s.Right.Count())*opts.IntersectionCost
}
