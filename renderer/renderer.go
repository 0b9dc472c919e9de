package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/atharkes/Raytracer/log"
	"github.com/atharkes/Raytracer/scene"
)

var logger = log.New("renderer")

// Render the scene into an RGBA frame. The frame is split into contiguous
// row blocks, one per worker; all workers share the immutable bvh tree so
// no locking is required while tracing.
func Render(sc *scene.Scene, opts Options) (*image.RGBA, FrameStats, error) {
	var stats FrameStats

	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, stats, ErrInvalidFrameDims
	}
	if sc.Camera == nil {
		return nil, stats, ErrMissingCamera
	}
	if sc.Tree == nil {
		return nil, stats, ErrSceneNotBuilt
	}
	if opts.MaxDist <= 0 {
		opts.MaxDist = 1e3
	}

	workers := opts.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if uint32(workers) > opts.FrameH {
		workers = int(opts.FrameH)
	}

	sc.Camera.SetupProjection(float32(opts.FrameW) / float32(opts.FrameH))
	img := image.NewRGBA(image.Rect(0, 0, int(opts.FrameW), int(opts.FrameH)))
	stats.Workers = make([]WorkerStats, workers)

	// Split the frame into equal row blocks; rows that do not divide
	// evenly are appended to the first worker's block.
	blockH := opts.FrameH / uint32(workers)
	extraRows := opts.FrameH - blockH*uint32(workers)

	logger.Debugf("rendering %dx%d frame using %d workers", opts.FrameW, opts.FrameH, workers)

	start := time.Now()
	var wg sync.WaitGroup
	var startRow uint32
	for worker := 0; worker < workers; worker++ {
		rows := blockH
		if worker == 0 {
			rows += extraRows
		}

		wg.Add(1)
		go func(worker int, startRow, rows uint32) {
			defer wg.Done()

			blockStart := time.Now()
			renderBlock(sc, img, opts, startRow, rows)
			stats.Workers[worker] = WorkerStats{
				Id:         worker,
				Rows:       rows,
				RenderTime: time.Since(blockStart),
			}
		}(worker, startRow, rows)

		startRow += rows
	}
	wg.Wait()

	stats.RenderTime = time.Since(start)
	return img, stats, nil
}

// Trace all rays for a block of frame rows and shade the result.
func renderBlock(sc *scene.Scene, img *image.RGBA, opts Options, startRow, rows uint32) {
	frameW := int(opts.FrameW)
	frameH := int(opts.FrameH)

	for y := int(startRow); y < int(startRow+rows); y++ {
		for x := 0; x < frameW; x++ {
			ray := sc.Camera.PrimaryRay(x, y, frameW, frameH, opts.MaxDist)
			hit, found := sc.Intersect(ray)

			var value uint8
			switch opts.Mode {
			case ModeSteps:
				value = clampShade(float32(ray.Steps) * 4)
			default:
				if found {
					value = clampShade(255 * (1 - hit.Distance/opts.MaxDist))
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: value, G: value, B: value, A: 255})
		}
	}
}

func clampShade(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
