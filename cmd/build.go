package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/boundlab/boundlab/asset/reader"
	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/renderer"
	"github.com/boundlab/boundlab/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Flags shared by commands that operate on an object set.
var ObjectFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "demo",
		Usage: "use a generated scene (grid, rotated, spheres, mixed) instead of obj files",
	},
	cli.IntFlag{
		Name:  "count, n",
		Value: 16,
		Usage: "number of objects in the generated scene",
	},
}

// Flags for selecting the hierarchy build options.
var BuildFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "method, m",
		Value: bvh.TopDown.String(),
		Usage: "build method (top-down, bottom-up)",
	},
	cli.StringFlag{
		Name:  "split, s",
		Value: bvh.MedianOfCenters.String(),
		Usage: "top-down split policy (median-centers, median-extents, k-even)",
	},
	cli.IntFlag{
		Name:  "min-leaf",
		Value: bvh.DefaultMinLeafSize,
		Usage: "max number of objects that end up in a single leaf",
	},
	cli.BoolFlag{
		Name:  "height-limited",
		Usage: "stop top-down partitioning at max-depth",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: bvh.DefaultMaxDepth,
		Usage: "depth limit for height limited builds",
	},
	cli.BoolFlag{
		Name:  "draw",
		Usage: "print the bounding volumes of the selected level",
	},
	cli.StringFlag{
		Name:  "volume",
		Value: bvh.AABBVolume.String(),
		Usage: "bounding volume to draw (aabb, ritter, larsson, pca)",
	},
	cli.IntFlag{
		Name:  "level",
		Value: bvh.AllLevels,
		Usage: "tree level to draw; -1 draws all levels",
	},
}

// Build a hierarchy over a set of objects and display its statistics.
func BuildHierarchy(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := buildOptions(
		ctx.String("method"),
		ctx.String("split"),
		ctx.Int("min-leaf"),
		ctx.Int("max-depth"),
		ctx.Bool("height-limited"),
	)
	if err != nil {
		logger.Error(err)
		return err
	}

	objects, err := loadObjects(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	sc := scene.NewScene(objects)
	if err = sc.SetOptions(opts); err != nil {
		logger.Error(err)
		return err
	}
	if err = sc.Rebuild(); err != nil {
		logger.Error(err)
		return err
	}

	displayBuildStats(sc.Tree)

	if !ctx.Bool("draw") {
		return nil
	}

	kind, err := bvh.ParseVolumeKind(ctx.String("volume"))
	if err != nil {
		logger.Error(err)
		return err
	}

	r := renderer.NewHierarchyRenderer(sc.Tree, renderer.NewTableSink(os.Stdout), renderer.Options{
		Kind:  kind,
		Level: ctx.Int("level"),
	})
	if err = r.Render(); err != nil {
		logger.Error(err)
		return err
	}

	stats := r.Stats()
	logger.Noticef("drew %d volumes (%d lines, %d spheres) in %s", stats.Volumes, stats.Lines, stats.Spheres, stats.RenderTime)
	return nil
}

// Map flag values to validated build options.
func buildOptions(method, split string, minLeaf, maxDepth int, heightLimited bool) (bvh.Options, error) {
	opts := bvh.DefaultOptions()

	var err error
	if opts.Method, err = bvh.ParseMethod(method); err != nil {
		return opts, err
	}
	if opts.Split, err = bvh.ParseSplitPolicy(split); err != nil {
		return opts, err
	}
	opts.MinLeafSize = minLeaf
	opts.MaxDepth = maxDepth
	opts.HeightLimited = heightLimited

	return opts, opts.Validate()
}

// Load objects from the obj files passed as arguments or generate a demo
// scene.
func loadObjects(ctx *cli.Context) ([]*bvh.Object, error) {
	if demo := ctx.String("demo"); demo != "" {
		kind, err := scene.ParseDemoKind(demo)
		if err != nil {
			return nil, err
		}
		return scene.Demo(kind, ctx.Int("count"))
	}

	if ctx.NArg() == 0 {
		return nil, errors.New("missing obj file argument or --demo flag")
	}

	objects := make([]*bvh.Object, 0)
	for idx := 0; idx < ctx.NArg(); idx++ {
		fileObjects, err := reader.ReadObjects(ctx.Args().Get(idx))
		if err != nil {
			return nil, err
		}
		objects = append(objects, fileObjects...)
	}

	if len(objects) == 0 {
		return nil, scene.ErrNoObjects
	}
	return objects, nil
}

func displayBuildStats(tree *bvh.Tree) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Method", "Objects", "Nodes", "Leaves", "Merges", "Depth", "Build time"})
	table.Append([]string{
		tree.Stats.Method.String(),
		fmt.Sprintf("%d", tree.Stats.Objects),
		fmt.Sprintf("%d", len(tree.Nodes)),
		fmt.Sprintf("%d", tree.Stats.Leaves),
		fmt.Sprintf("%d", tree.Stats.Merges),
		fmt.Sprintf("%d", tree.Depth()),
		fmt.Sprintf("%s", tree.Stats.BuildTime),
	})

	table.Render()
	logger.Noticef("hierarchy statistics\n%s", buf.String())
}
