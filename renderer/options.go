package renderer

// Shading mode for rendered frames.
type Mode uint8

const (
	// Shade pixels by the distance to the nearest hit.
	ModeDepth Mode = iota

	// Shade pixels by the number of bvh nodes visited per primary ray.
	// Useful for visualizing traversal cost.
	ModeSteps
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of parallel render workers. Defaults to the number of CPUs
	// when zero.
	NumWorkers int

	// Shading mode for the output frame.
	Mode Mode

	// Maximum primary ray travel distance.
	MaxDist float32
}
