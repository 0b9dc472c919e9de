package bvh

import (
	"math"
	"sort"

	"github.com/atharkes/Raytracer/types"
)

// A Node is a single node of a bvh tree. A leaf owns its primitives
// through its box; an internal node owns exactly two children and its box
// is the union of theirs. Nodes are immutable once constructed.
type Node struct {
	Box   *AABB
	Left  *Node
	Right *Node

	// Unit vector along the axis of the accepted split. Only valid for
	// internal nodes; traversal uses it to order the children.
	SplitDir types.Vec3

	leaf bool
	opts *Options
}

// Construct a node and recursively its whole subtree from a primitive list.
func newNode(primitives []Primitive, opts *Options) *Node {
	return newNodeFromBox(NewAABBFromPrimitives(primitives), opts)
}

// Construct a node from a pre-built box and immediately attempt to split it.
func newNodeFromBox(box *AABB, opts *Options) *Node {
	node := &Node{Box: box, leaf: true, opts: opts}
	node.trySplit()
	return node
}

// Leaf reports whether this node holds primitives directly.
func (n *Node) Leaf() bool {
	return n.leaf
}

// Search for a split that beats the cost of keeping this node a leaf and,
// if one exists, hand the primitives over to two freshly built children.
func (n *Node) trySplit() {
	split := n.computeBestSplit()
	if split == nil {
		return
	}

	n.Left = newNodeFromBox(split.Left, n.opts)
	n.Right = newNodeFromBox(split.Right, n.opts)
	n.Box = n.Left.Box.Merge(n.Right.Box)
	n.SplitDir = split.Direction
	n.leaf = false
}

// computeBestSplit returns the cheapest candidate split, or nil when no
// candidate strictly beats the SAH cost of leaving the node a leaf.
func (n *Node) computeBestSplit() *Split {
	if n.Box.Count() < 2 {
		return nil
	}

	var candidates []*Split
	if n.opts.BinnedSplits && n.Box.Count() > n.opts.BinCount {
		candidates = n.binSplits()
	} else {
		candidates = n.checkAllSplits()
	}

	bestCost := n.Box.LeafCost(n.opts)
	var best *Split
	for _, split := range candidates {
		if cost := split.Cost(n.Box, n.opts); cost < bestCost {
			bestCost = cost
			best = split
		}
	}
	return best
}

// checkAllSplits is the exhaustive strategy: for every axis the primitives
// are sorted by center and every partition point is scored, keeping the
// cheapest position per axis.
func (n *Node) checkAllSplits() []*Split {
	count := n.Box.Count()
	sorted := make([]Primitive, count)
	suffixMin := make([]types.Vec3, count)
	suffixMax := make([]types.Vec3, count)

	candidates := make([]*Split, 0, 3)
	for axis := 0; axis < 3; axis++ {
		copy(sorted, n.Box.Primitives())
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Center()[axis] < sorted[j].Center()[axis]
		})

		// Suffix extents let the sweep read the right-hand bounds in
		// constant time.
		min := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
		max := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
		for idx := count - 1; idx >= 0; idx-- {
			bbox := sorted[idx].BBox()
			min = types.MinVec3(min, bbox[0])
			max = types.MaxVec3(max, bbox[1])
			suffixMin[idx] = min
			suffixMax[idx] = max
		}

		lmin := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
		lmax := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
		bestIndex := -1
		var bestCost float32 = math.MaxFloat32
		for idx := 1; idx < count; idx++ {
			bbox := sorted[idx-1].BBox()
			lmin = types.MinVec3(lmin, bbox[0])
			lmax = types.MaxVec3(lmax, bbox[1])

			cost := n.partitionCost(lmin, lmax, idx, suffixMin[idx], suffixMax[idx], count-idx)
			if cost < bestCost {
				bestCost = cost
				bestIndex = idx
			}
		}

		if bestIndex < 0 {
			continue
		}
		candidates = append(candidates, &Split{
			Direction: axisDirections[axis],
			Left:      NewAABBFromPrimitives(sorted[:bestIndex]),
			Right:     NewAABBFromPrimitives(sorted[bestIndex:]),
		})
	}
	return candidates
}

// binSplits is the binned strategy: primitives are bucketed into BinCount
// uniform intervals along the single longest axis and only the bin
// boundaries are scored, avoiding the sort cost of the exhaustive sweep.
func (n *Node) binSplits() []*Split {
	axis := longestAxis(n.Box.Size())
	extent := n.Box.Size()[axis]
	if extent <= 0 {
		return nil
	}

	binCount := n.opts.BinCount
	bins := make([][]Primitive, binCount)
	scale := float32(binCount) * binScale / extent
	for _, prim := range n.Box.Primitives() {
		idx := int(scale * (prim.Center()[axis] - n.Box.Min[axis]))

		// Centers are not required to lie inside the box.
		if idx < 0 {
			idx = 0
		} else if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx] = append(bins[idx], prim)
	}

	// Prefix extents/counts over the bins; boundary b puts bins [0,b) on
	// the left side of the split.
	prefixMin := make([]types.Vec3, binCount)
	prefixMax := make([]types.Vec3, binCount)
	prefixCount := make([]int, binCount)
	suffixMin := make([]types.Vec3, binCount)
	suffixMax := make([]types.Vec3, binCount)
	suffixCount := make([]int, binCount)

	min := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	total := 0
	for idx := 0; idx < binCount; idx++ {
		for _, prim := range bins[idx] {
			bbox := prim.BBox()
			min = types.MinVec3(min, bbox[0])
			max = types.MaxVec3(max, bbox[1])
		}
		total += len(bins[idx])
		prefixMin[idx] = min
		prefixMax[idx] = max
		prefixCount[idx] = total
	}

	min = types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max = types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	total = 0
	for idx := binCount - 1; idx >= 0; idx-- {
		for _, prim := range bins[idx] {
			bbox := prim.BBox()
			min = types.MinVec3(min, bbox[0])
			max = types.MaxVec3(max, bbox[1])
		}
		total += len(bins[idx])
		suffixMin[idx] = min
		suffixMax[idx] = max
		suffixCount[idx] = total
	}

	bestBoundary := -1
	var bestCost float32 = math.MaxFloat32
	for boundary := 1; boundary < binCount; boundary++ {
		leftCount := prefixCount[boundary-1]
		rightCount := suffixCount[boundary]

		// Boundaries with an empty side cannot beat the leaf cost.
		if leftCount == 0 || rightCount == 0 {
			continue
		}

		cost := n.partitionCost(
			prefixMin[boundary-1], prefixMax[boundary-1], leftCount,
			suffixMin[boundary], suffixMax[boundary], rightCount,
		)
		if cost < bestCost {
			bestCost = cost
			bestBoundary = boundary
		}
	}

	if bestBoundary < 0 {
		return nil
	}

	left := NewAABB()
	right := NewAABB()
	for idx := 0; idx < binCount; idx++ {
		if idx < bestBoundary {
			left.AddRange(bins[idx])
		} else {
			right.AddRange(bins[idx])
		}
	}
	return []*Split{{
		Direction: axisDirections[axis],
		Left:      left,
		Right:     right,
	}}
}

// SAH cost of a candidate partition expressed directly on raw extents.
// Used by the sweep loops before any candidate is materialized; matches
// Split.Cost for the same partition.
func (n *Node) partitionCost(lmin, lmax types.Vec3, leftCount int, rmin, rmax types.Vec3, rightCount int) float32 {
	parentArea := n.Box.SurfaceArea()
	if parentArea <= 0 || math.IsNaN(float64(parentArea)) || math.IsInf(float64(parentArea), 0) {
		return math.MaxFloat32
	}

	return n.opts.TraversalCost +
		(surfaceArea(lmin, lmax)/parentArea)*float32(leftCount)*n.opts.IntersectionCost +
		(surfaceArea(rmin, rmax)/parentArea)*float32(rightCount)*n.opts.IntersectionCost
}

func surfaceArea(min, max types.Vec3) float32 {
	size := max.Sub(min)
	return 2 * (size[0]*size[1] + size[1]*size[2] + size[2]*size[0])
}

func longestAxis(size types.Vec3) int {
	axis := 0
	if size[1] > size[axis] {
		axis = 1
	}
	if size[2] > size[axis] {
		axis = 2
	}
	return axis
}

// Intersect returns the nearest intersection of the ray with the geometry
// below this node. Children are visited split-ordered, near side first.
func (n *Node) Intersect(ray *Ray) (Intersection, bool) {
	ray.Steps++

	if n.leaf {
		// An empty tree is a leaf with no primitives and a degenerate
		// box that must not be intersection-tested.
		if n.Box.Count() == 0 {
			return Intersection{}, false
		}
		if !n.Box.Intersect(ray) {
			return Intersection{}, false
		}
		return n.Box.IntersectPrimitives(ray)
	}

	if !n.Box.Intersect(ray) {
		return Intersection{}, false
	}

	near, far := n.Left, n.Right
	if n.SplitDir.Dot(ray.Dir) >= 0 {
		near, far = n.Right, n.Left
	}

	nearHit, nearOk := near.Intersect(ray)
	farHit, farOk := far.Intersect(ray)
	switch {
	case nearOk && farOk:
		if farHit.Distance < nearHit.Distance {
			return farHit, true
		}
		return nearHit, true
	case farOk:
		return farHit, true
	default:
		return nearHit, nearOk
	}
}

// IntersectAny reports whether the ray hits anything below this node,
// short-circuiting on the first hit found.
func (n *Node) IntersectAny(ray *Ray) bool {
	ray.Steps++

	if n.leaf {
		if n.Box.Count() == 0 {
			return false
		}
		return n.Box.Intersect(ray) && n.Box.IntersectPrimitivesAny(ray)
	}

	if !n.Box.Intersect(ray) {
		return false
	}
	return n.Left.IntersectAny(ray) || n.Right.IntersectAny(ray)
}
