package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/atharkes/Raytracer/renderer"
	"github.com/atharkes/Raytracer/scene/reader"
)

// Render a single frame of the scene and save it as a png image.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("expected a single scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}
	sc.Build(bvhOptions(ctx))

	opts := renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		NumWorkers: ctx.Int("workers"),
		MaxDist:    float32(ctx.Float64("max-dist")),
	}
	if ctx.String("mode") == "steps" {
		opts.Mode = renderer.ModeSteps
	}

	img, stats, err := renderer.Render(sc, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	if err = png.Encode(out, img); err != nil {
		return err
	}

	displayFrameStats(stats)
	logger.Noticef("wrote frame to %s", ctx.String("out"))
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Id),
			fmt.Sprintf("%d", stat.Rows),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
