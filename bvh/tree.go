package bvh

import (
	"time"

	"github.com/atharkes/Raytracer/log"
)

var logger = log.New("bvh")

// A Tree accelerates ray queries over a fixed set of primitives. Trees are
// built once per scene snapshot and are immutable afterwards: any change to
// the primitive set requires a full rebuild. Queries never mutate shared
// state so a built tree is safe for any number of concurrent readers.
type Tree struct {
	Root *Node

	opts Options
}

// Create a tree with no primitives. Every query answers "no hit".
func New(opts Options) *Tree {
	tree := &Tree{opts: opts}
	tree.Root = &Node{Box: NewAABB(), leaf: true, opts: &tree.opts}
	return tree
}

// Build a tree over the given primitives. Construction is eager, recursive
// and one-shot; the input slice is copied so the caller may keep using it.
func Build(primitives []Primitive, opts Options) *Tree {
	tree := &Tree{opts: opts}

	workList := make([]Primitive, len(primitives))
	copy(workList, primitives)

	start := time.Now()
	tree.Root = newNode(workList, &tree.opts)

	stats := tree.Stats()
	logger.Debugf(
		"bvh build time: %d ms, max depth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		stats.MaxDepth, stats.Nodes, stats.Leafs,
	)
	return tree
}

// Intersect returns the nearest intersection of the ray with the indexed
// primitives, if any.
func (t *Tree) Intersect(ray *Ray) (Intersection, bool) {
	return t.Root.Intersect(ray)
}

// Intersects reports whether the ray hits any indexed primitive. Used for
// shadow/occlusion style queries where the nearest hit does not matter.
func (t *Tree) Intersects(ray *Ray) bool {
	return t.Root.IntersectAny(ray)
}

// TreeStats summarizes the shape of a built tree.
type TreeStats struct {
	Nodes      int
	Leafs      int
	MaxDepth   int
	Primitives int
}

// Stats walks the tree and tallies its shape.
func (t *Tree) Stats() TreeStats {
	var stats TreeStats
	collectStats(t.Root, 0, &stats)
	return stats
}

func collectStats(node *Node, depth int, stats *TreeStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Leaf() {
		stats.Leafs++
		stats.Primitives += node.Box.Count()
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
