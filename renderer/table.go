package renderer

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableSink prints every primitive as a row of a text table.
type TableSink struct {
	w io.Writer
}

// Create a sink that writes tables to w.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) Draw(primitives []Primitive) error {
	table := tablewriter.NewWriter(s.w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Primitive", "Geometry", "Color"})

	for idx, prim := range primitives {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			prim.Kind.String(),
			describe(prim),
			fmt.Sprintf("%.2f %.2f %.2f", prim.Color[0], prim.Color[1], prim.Color[2]),
		})
	}

	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", len(primitives))})
	table.Render()
	return nil
}

func describe(prim Primitive) string {
	switch prim.Kind {
	case LinePrimitive:
		return fmt.Sprintf("%v -> %v", prim.Line[0], prim.Line[1])
	case TrianglePrimitive:
		return fmt.Sprintf("%v %v %v", prim.Triangle.V1, prim.Triangle.V2, prim.Triangle.V3)
	case SpherePrimitive:
		return fmt.Sprintf("center %v radius %.4f", prim.Sphere.Center, prim.Sphere.Radius)
	}
	return ""
}
