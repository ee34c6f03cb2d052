package cmd

import (
	"bytes"
	"fmt"

	"github.com/boundlab/boundlab/bounds"
	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/geometry"
	"github.com/chewxy/math32"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Fit all bounding volumes to each object and compare them.
func FitObjects(ctx *cli.Context) error {
	setupLogging(ctx)

	objects, err := loadObjects(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	displayFitReport(objects)
	return nil
}

func displayFitReport(objects []*bvh.Object) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Vertices", "AABB volume", "Ritter r", "Larsson r", "Larsson (box seed) r", "PCA r", "Tightest"})

	var totals [5]float32
	for _, obj := range objects {
		row := fitRow(obj)
		table.Append(row.cells())
		for i, v := range row.volumes {
			totals[i] += v
		}
	}

	table.SetFooter(fitFooter(totals))
	table.Render()
	logger.Noticef("bounding volume report\n%s", buf.String())
}

// Summed volumes. The sphere columns list radii per object so their totals
// are labelled as volumes.
func fitFooter(totals [5]float32) []string {
	footer := []string{"TOTAL", "", fmt.Sprintf("%.3f", totals[0])}
	for _, v := range totals[1:] {
		footer = append(footer, fmt.Sprintf("vol %.3f", v))
	}
	return append(footer, "")
}

// Names of the compared volumes in report column order.
var fitNames = [5]string{"aabb", "ritter", "larsson", "larsson-box", "pca"}

type fitResult struct {
	name     string
	vertices int
	box      geometry.AABB
	spheres  [4]geometry.Sphere

	// Enclosed volume for each entry of fitNames.
	volumes [5]float32
}

func fitRow(obj *bvh.Object) fitResult {
	res := fitResult{
		name:     obj.Name,
		vertices: len(obj.Vertices),
		box:      obj.AABB,
		spheres: [4]geometry.Sphere{
			obj.RitterSphere,
			obj.LarssonSphere,
			bounds.LarssonSphereBoxSeed(obj.Vertices),
			obj.PCASphere,
		},
	}

	res.volumes[0] = obj.AABB.Volume()
	for i, s := range res.spheres {
		res.volumes[i+1] = sphereVolume(s)
	}
	return res
}

// Get the name of the volume that encloses the least space.
func (r fitResult) tightest() string {
	best := 0
	for i, v := range r.volumes {
		if v < r.volumes[best] {
			best = i
		}
	}
	return fitNames[best]
}

func (r fitResult) cells() []string {
	return []string{
		r.name,
		fmt.Sprintf("%d", r.vertices),
		fmt.Sprintf("%.3f", r.volumes[0]),
		fmt.Sprintf("%.3f", r.spheres[0].Radius),
		fmt.Sprintf("%.3f", r.spheres[1].Radius),
		fmt.Sprintf("%.3f", r.spheres[2].Radius),
		fmt.Sprintf("%.3f", r.spheres[3].Radius),
		r.tightest(),
	}
}

func sphereVolume(s geometry.Sphere) float32 {
	return 4.0 / 3.0 * math32.Pi * s.Radius * s.Radius * s.Radius
}
