package renderer

import (
	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/types"
)

type PrimitiveKind uint8

const (
	LinePrimitive PrimitiveKind = iota
	TrianglePrimitive
	SpherePrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case LinePrimitive:
		return "line"
	case TrianglePrimitive:
		return "triangle"
	case SpherePrimitive:
		return "sphere"
	}
	return "unknown"
}

// Primitive is a colored shape handed to a Sink. Only the field matching
// Kind is populated.
type Primitive struct {
	Kind PrimitiveKind

	Line     [2]types.Vec3
	Triangle geometry.Triangle
	Sphere   geometry.Sphere

	// RGB color with components in [0, 1].
	Color types.Vec3
}

// Sink receives primitive lists. A sink may be a GPU draw queue, a file or
// a text report.
type Sink interface {
	Draw(primitives []Primitive) error
}

// Colors used for intersection results.
var (
	HitColor  = types.XYZ(1, 0, 0)
	MissColor = types.XYZ(0, 1, 0)
)

// Per-level colors; levels deeper than the palette wrap around.
var levelPalette = []types.Vec3{
	{1, 1, 1},
	{1, 0.2, 0.2},
	{0.2, 1, 0.2},
	{0.2, 0.4, 1},
	{1, 1, 0.2},
	{1, 0.2, 1},
	{0.2, 1, 1},
	{1, 0.6, 0.2},
}

// Get the color assigned to a tree level.
func LevelColor(level int) types.Vec3 {
	if level < 0 {
		level = -level
	}
	return levelPalette[level%len(levelPalette)]
}

// Convert volumes into primitives colored by tree level. A box becomes its
// 12 edges and a sphere becomes a single sphere primitive.
func Primitives(volumes []bvh.Volume) []Primitive {
	out := make([]Primitive, 0, len(volumes)*len(geometry.BoxEdges))
	for _, vol := range volumes {
		color := LevelColor(vol.Level)
		if vol.Kind.IsSphere() {
			out = append(out, SpherePrim(vol.Sphere, color))
			continue
		}
		out = append(out, BoxLines(vol.Box, color)...)
	}
	return out
}

// Get the edges of a box as line primitives.
func BoxLines(box geometry.AABB, color types.Vec3) []Primitive {
	corners := box.Corners()
	out := make([]Primitive, len(geometry.BoxEdges))
	for i, edge := range geometry.BoxEdges {
		out[i] = Primitive{
			Kind:  LinePrimitive,
			Line:  [2]types.Vec3{corners[edge[0]], corners[edge[1]]},
			Color: color,
		}
	}
	return out
}

func SpherePrim(s geometry.Sphere, color types.Vec3) Primitive {
	return Primitive{Kind: SpherePrimitive, Sphere: s, Color: color}
}

func TrianglePrim(tri geometry.Triangle, color types.Vec3) Primitive {
	return Primitive{Kind: TrianglePrimitive, Triangle: tri, Color: color}
}

func LinePrim(from, to types.Vec3, color types.Vec3) Primitive {
	return Primitive{Kind: LinePrimitive, Line: [2]types.Vec3{from, to}, Color: color}
}
