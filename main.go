package main

import (
	"os"

	"github.com/boundlab/boundlab/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "boundlab"
	app.Usage = "build and inspect bounding volume hierarchies"
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
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build a bounding volume hierarchy over a set of objects",
			Description: `
Load objects from one or more wavefront obj files (one object per "o" or "g"
group, or one per "instance" line) or generate a demo scene, then build a
hierarchy over them using the top-down or bottom-up method.

When --draw is specified, the bounding volumes of the selected tree level are
converted to line and sphere primitives and printed.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     append(append([]cli.Flag{}, cmd.BuildFlags...), cmd.ObjectFlags...),
			Action:    cmd.BuildHierarchy,
		},
		{
			Name:  "fit",
			Usage: "compare the bounding volumes fitted to each object",
			Description: `
Fit an AABB as well as Ritter, Larsson and PCA bounding spheres to every
object and report the enclosed volume of each.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     cmd.ObjectFlags,
			Action:    cmd.FitObjects,
		},
		{
			Name:  "intersect",
			Usage: "test two shapes for intersection",
			Description: `
Shapes are specified as kind:values where kind is one of point, ray, plane,
triangle, sphere or aabb. For example:

  boundlab intersect sphere:0,0,0,1 aabb:0.5,0.5,0.5,2,2,2
  boundlab intersect ray:0,0,-5,0,0,1 triangle:-1,-1,0,1,-1,0,0,1,0`,
			ArgsUsage: "shape1 shape2",
			Action:    cmd.Intersect,
		},
	}

	app.Run(os.Args)
}
