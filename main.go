package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/atharkes/Raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "trace scenes on the cpu using a sah-optimized bvh"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	bvhFlags := []cli.Flag{
		cli.BoolFlag{
			Name:  "exhaustive",
			Usage: "evaluate every split position on every axis instead of binning",
		},
		cli.IntFlag{
			Name:  "bins",
			Value: 0,
			Usage: "number of bins used by the binned split search (0 = default)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build a bvh tree for a scene and display statistics",
			Description: `
Parse a scene definition from a wavefront obj file, build a BVH tree over its
geometry and display statistics about the scene and the tree shape.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     bvhFlags,
			Action:    cmd.SceneStats,
		},
		{
			Name:        "render",
			Usage:       "render a single frame",
			Description: `Render a single depth or traversal-cost frame of the scene.`,
			ArgsUsage:   "scene_file.obj",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = one per cpu)",
				},
				cli.Float64Flag{
					Name:  "max-dist",
					Value: 1e3,
					Usage: "maximum primary ray travel distance",
				},
				cli.StringFlag{
					Name:  "mode",
					Value: "depth",
					Usage: "shading mode: depth or steps",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, bvhFlags...),
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
