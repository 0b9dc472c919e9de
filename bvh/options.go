package bvh

// Options bundles the tunables that control tree construction. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// Estimated cost of visiting an extra node during traversal.
	TraversalCost float32

	// Estimated cost of a single ray/primitive intersection test.
	IntersectionCost float32

	// Number of bins evaluated by the binned split strategy.
	BinCount int

	// When true, nodes holding more primitives than BinCount search for
	// splits with the binned strategy instead of the exhaustive sweep.
	BinnedSplits bool
}

// binScale keeps primitives that sit exactly on the upper bound of a node
// extent from being assigned an out-of-range bin index.
const binScale float32 = 0.99999

// The tunables used when callers have no reason to deviate.
func DefaultOptions() Options {
	return Options{
		TraversalCost:    1,
		IntersectionCost: 4,
		BinCount:         16,
		BinnedSplits:     true,
	}
}
