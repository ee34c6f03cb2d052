package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/renderer"
	"github.com/boundlab/boundlab/types"
	"github.com/urfave/cli"
)

type shapeKind uint8

// Shape pairs are evaluated with the lower kind first.
const (
	pointShape shapeKind = iota
	rayShape
	planeShape
	triangleShape
	sphereShape
	aabbShape
)

var shapeNames = []string{"point", "ray", "plane", "triangle", "sphere", "aabb"}

// Number of values each shape definition expects.
var shapeArgs = []int{3, 6, 4, 9, 4, 6}

func (k shapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return "unknown"
}

type shape struct {
	kind shapeKind

	point    geometry.Point
	ray      geometry.Ray
	plane    geometry.Plane
	triangle geometry.Triangle
	sphere   geometry.Sphere
	aabb     geometry.AABB
}

// The radius of the sphere primitive used for drawing points.
const pointDrawRadius = 0.05

// Length of the segment used for drawing rays, in multiples of the ray
// direction.
const rayDrawLength = 10

// Test two shapes for intersection and print the colored result.
func Intersect(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		err := errors.New("expected exactly 2 shape arguments")
		logger.Error(err)
		return err
	}

	var shapes [2]shape
	for idx := range shapes {
		s, err := parseShape(ctx.Args().Get(idx))
		if err != nil {
			logger.Error(err)
			return err
		}
		shapes[idx] = s
	}

	hit, point, hasPoint, err := intersect(shapes[0], shapes[1])
	if err != nil {
		logger.Error(err)
		return err
	}

	var buf bytes.Buffer
	if err = renderer.NewTableSink(&buf).Draw(resultPrimitives(shapes, hit, point, hasPoint)); err != nil {
		return err
	}

	result := "no intersection"
	if hit {
		result = "intersection"
		if hasPoint {
			result = fmt.Sprintf("intersection at %v", point)
		}
	}
	logger.Noticef("%s vs %s: %s\n%s", shapes[0].kind, shapes[1].kind, result, buf.String())
	return nil
}

// Parse a shape definition of the form kind:v1,v2,... where the values are:
//   - point:x,y,z
//   - ray:startX,startY,startZ,dirX,dirY,dirZ
//   - plane:nX,nY,nZ,offset
//   - triangle:x1,y1,z1,x2,y2,z2,x3,y3,z3
//   - sphere:x,y,z,radius
//   - aabb:minX,minY,minZ,maxX,maxY,maxZ
func parseShape(def string) (shape, error) {
	tokens := strings.SplitN(def, ":", 2)
	if len(tokens) != 2 {
		return shape{}, fmt.Errorf("invalid shape %q; expected kind:values", def)
	}

	kind := -1
	for idx, name := range shapeNames {
		if strings.ToLower(tokens[0]) == name {
			kind = idx
			break
		}
	}
	if kind == -1 {
		return shape{}, fmt.Errorf("unknown shape kind %q", tokens[0])
	}

	valueTokens := strings.Split(tokens[1], ",")
	if len(valueTokens) != shapeArgs[kind] {
		return shape{}, fmt.Errorf(`unsupported syntax for "%s"; expected %d values; got %d`, shapeNames[kind], shapeArgs[kind], len(valueTokens))
	}

	v := make([]float32, len(valueTokens))
	for idx, tok := range valueTokens {
		f, err := strconv.ParseFloat(strings.TrimSpace(tok), 32)
		if err != nil {
			return shape{}, err
		}
		v[idx] = float32(f)
	}

	s := shape{kind: shapeKind(kind)}
	switch s.kind {
	case pointShape:
		s.point = geometry.Point{Coordinates: types.XYZ(v[0], v[1], v[2])}
	case rayShape:
		s.ray = geometry.Ray{Start: types.XYZ(v[0], v[1], v[2]), Direction: types.XYZ(v[3], v[4], v[5])}
	case planeShape:
		s.plane = geometry.NewPlane(types.XYZ(v[0], v[1], v[2]), v[3])
	case triangleShape:
		s.triangle = geometry.Triangle{
			V1: types.XYZ(v[0], v[1], v[2]),
			V2: types.XYZ(v[3], v[4], v[5]),
			V3: types.XYZ(v[6], v[7], v[8]),
		}
	case sphereShape:
		s.sphere = geometry.Sphere{Center: types.XYZ(v[0], v[1], v[2]), Radius: v[3]}
	case aabbShape:
		lo, hi := types.XYZ(v[0], v[1], v[2]), types.XYZ(v[3], v[4], v[5])
		s.aabb = geometry.AABB{Min: types.MinVec3(lo, hi), Max: types.MaxVec3(lo, hi)}
	}
	return s, nil
}

// Run the intersection test for a pair of shapes. Ray tests also return the
// hit point.
func intersect(a, b shape) (hit bool, point types.Vec3, hasPoint bool, err error) {
	if a.kind > b.kind {
		a, b = b, a
	}

	switch {
	case a.kind == pointShape && b.kind == planeShape:
		return geometry.PointPlane(a.point, b.plane), point, false, nil
	case a.kind == pointShape && b.kind == triangleShape:
		return geometry.PointTriangle(a.point, b.triangle), point, false, nil
	case a.kind == pointShape && b.kind == sphereShape:
		return geometry.PointSphere(a.point, b.sphere), point, false, nil
	case a.kind == pointShape && b.kind == aabbShape:
		return geometry.PointAABB(a.point, b.aabb), point, false, nil
	case a.kind == rayShape && b.kind == planeShape:
		hit, point = geometry.RayPlane(a.ray, b.plane)
		return hit, point, hit, nil
	case a.kind == rayShape && b.kind == triangleShape:
		hit, point = geometry.RayTriangle(a.ray, b.triangle)
		return hit, point, hit, nil
	case a.kind == rayShape && b.kind == sphereShape:
		hit, point = geometry.RaySphere(a.ray, b.sphere)
		return hit, point, hit, nil
	case a.kind == rayShape && b.kind == aabbShape:
		hit, point = geometry.RayAABB(a.ray, b.aabb)
		return hit, point, hit, nil
	case a.kind == planeShape && b.kind == sphereShape:
		return geometry.PlaneSphere(a.plane, b.sphere), point, false, nil
	case a.kind == planeShape && b.kind == aabbShape:
		return geometry.PlaneAABB(a.plane, b.aabb), point, false, nil
	case a.kind == sphereShape && b.kind == sphereShape:
		return geometry.SphereSphere(a.sphere, b.sphere), point, false, nil
	case a.kind == sphereShape && b.kind == aabbShape:
		return geometry.SphereAABB(a.sphere, b.aabb), point, false, nil
	case a.kind == aabbShape && b.kind == aabbShape:
		return geometry.AABBAABB(a.aabb, b.aabb), point, false, nil
	}
	return false, point, false, fmt.Errorf("unsupported shape pair %s/%s", a.kind, b.kind)
}

// Get primitives for both shapes, colored by the test result, plus a marker
// for the hit point of ray tests.
func resultPrimitives(shapes [2]shape, hit bool, point types.Vec3, hasPoint bool) []renderer.Primitive {
	color := renderer.MissColor
	if hit {
		color = renderer.HitColor
	}

	out := make([]renderer.Primitive, 0)
	for _, s := range shapes {
		switch s.kind {
		case pointShape:
			out = append(out, renderer.SpherePrim(geometry.Sphere{Center: s.point.Coordinates, Radius: pointDrawRadius}, color))
		case rayShape:
			out = append(out, renderer.LinePrim(s.ray.Start, s.ray.At(rayDrawLength), color))
		case planeShape:
			// Planes are drawn as their unit normal.
			out = append(out, renderer.LinePrim(types.Vec3{}, s.plane.Normal.Vec3(), color))
		case triangleShape:
			out = append(out, renderer.TrianglePrim(s.triangle, color))
		case sphereShape:
			out = append(out, renderer.SpherePrim(s.sphere, color))
		case aabbShape:
			out = append(out, renderer.BoxLines(s.aabb, color)...)
		}
	}

	if hasPoint {
		out = append(out, renderer.SpherePrim(geometry.Sphere{Center: point, Radius: pointDrawRadius}, renderer.HitColor))
	}
	return out
}
