package renderer

import "time"

// Per-worker render statistics for a single frame.
type WorkerStats struct {
	Id int

	// Number of frame rows traced by this worker.
	Rows uint32

	// Wall clock time the worker spent tracing its block.
	RenderTime time.Duration
}

// Statistics for a rendered frame.
type FrameStats struct {
	Workers []WorkerStats

	// Total wall clock render time for the frame.
	RenderTime time.Duration
}
