package cmd

import (
	"errors"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/scene/reader"
)

// Build a bvh tree for each scene file and display statistics about the
// scene and the resulting tree.
func SceneStats(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("no scene files specified")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".obj") {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		start := time.Now()
		sc.Build(bvhOptions(ctx))
		logger.Noticef("built bvh for %s in %d ms", sceneFile, time.Since(start).Nanoseconds()/1e6)
		logger.Noticef("scene statistics\n%s", sc.Stats())
	}
	return nil
}

// Assemble bvh construction options from the command flags.
func bvhOptions(ctx *cli.Context) bvh.Options {
	opts := bvh.DefaultOptions()
	if ctx.Bool("exhaustive") {
		opts.BinnedSplits = false
	}
	if binCount := ctx.Int("bins"); binCount > 0 {
		opts.BinCount = binCount
	}
	return opts
}
