package scene

import (
	"fmt"

	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/types"
	"github.com/chewxy/math32"
)

// DemoKind selects one of the generated demo scenes.
type DemoKind uint8

const (
	// Axis aligned boxes on a regular grid.
	GridDemo DemoKind = iota
	// Boxes on a ring, each one rotated by a different angle.
	RotatedDemo
	// UV spheres of varying radius along a spiral.
	SphereDemo
	// Alternating boxes and spheres.
	MixedDemo
)

func (k DemoKind) String() string {
	switch k {
	case GridDemo:
		return "grid"
	case RotatedDemo:
		return "rotated"
	case SphereDemo:
		return "spheres"
	case MixedDemo:
		return "mixed"
	}
	return "unknown"
}

// Parse a demo kind from its name.
func ParseDemoKind(name string) (DemoKind, error) {
	for _, kind := range []DemoKind{GridDemo, RotatedDemo, SphereDemo, MixedDemo} {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("scene: unknown demo kind %q", name)
}

// Sector and stack counts for generated spheres.
const (
	SphereSectors = 36
	SphereStacks  = 18
)

// Generate count objects for the selected demo scene. Output is
// deterministic.
func Demo(kind DemoKind, count int) ([]*bvh.Object, error) {
	if count < 1 {
		return nil, ErrNoObjects
	}

	switch kind {
	case GridDemo:
		side := int(math32.Ceil(math32.Cbrt(float32(count))))
		return BoxGrid(side, side, side, 3, 1)[:count], nil
	case RotatedDemo:
		return RotatedBoxes(count, float32(count)), nil
	case SphereDemo:
		return SphereSpiral(count, SphereSectors, SphereStacks), nil
	case MixedDemo:
		objects := make([]*bvh.Object, 0, count)
		spheres := SphereSpiral(count, SphereSectors/2, SphereStacks/2)
		boxes := RotatedBoxes(count, float32(count))
		for i := 0; i < count; i++ {
			if i%2 == 0 {
				objects = append(objects, boxes[i])
			} else {
				objects = append(objects, spheres[i])
			}
		}
		return objects, nil
	}
	return nil, fmt.Errorf("scene: unknown demo kind %d", kind)
}

// Generate nx*ny*nz cubes with edge length size whose centers are spacing
// units apart. The first cube is centered at the origin.
func BoxGrid(nx, ny, nz int, spacing, size float32) []*bvh.Object {
	objects := make([]*bvh.Object, 0, nx*ny*nz)
	half := types.XYZ(size*0.5, size*0.5, size*0.5)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				center := types.XYZ(float32(x)*spacing, float32(y)*spacing, float32(z)*spacing)
				objects = append(objects, bvh.NewObject(
					fmt.Sprintf("box_%d_%d_%d", x, y, z),
					BoxVertices(center, half, types.QuatIdent()),
				))
			}
		}
	}
	return objects
}

// Generate count boxes evenly spaced on a circle of the given radius in the
// XZ plane. Box i is rotated by i*37 degrees of yaw and i*23 degrees of
// pitch and its half extents grow with i.
func RotatedBoxes(count int, radius float32) []*bvh.Object {
	objects := make([]*bvh.Object, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(count)
		center := types.XYZ(radius*math32.Cos(angle), float32(i%3), radius*math32.Sin(angle))
		half := types.XYZ(0.5+0.1*float32(i%4), 0.25, 0.5)
		rot := types.QuatFromYawPitchRoll(float32(i*37), float32(i*23), 0)
		objects = append(objects, bvh.NewObject(
			fmt.Sprintf("rotated_box_%d", i),
			BoxVertices(center, half, rot),
		))
	}
	return objects
}

// Generate count UV spheres placed along a spiral with radii between 0.5
// and 1.5.
func SphereSpiral(count, sectorCount, stackCount int) []*bvh.Object {
	objects := make([]*bvh.Object, 0, count)
	for i := 0; i < count; i++ {
		angle := float32(i) * 0.8
		dist := 2 + float32(i)*0.75
		center := types.XYZ(dist*math32.Cos(angle), float32(i)*0.5, dist*math32.Sin(angle))
		radius := 0.5 + float32(i%5)*0.25
		objects = append(objects, bvh.NewObject(
			fmt.Sprintf("sphere_%d", i),
			SphereVertices(center, radius, sectorCount, stackCount),
		))
	}
	return objects
}

// Get the 8 corners of a box with the given center and half extents,
// rotated around its center.
func BoxVertices(center, halfExtents types.Vec3, rot types.Quat) []types.Vec3 {
	corners := geometry.NewAABBFromCenter(types.Vec3{}, halfExtents).Corners()
	out := make([]types.Vec3, len(corners))
	for i, c := range corners {
		out[i] = rot.Rotate(c).Add(center)
	}
	return out
}

// Generate the vertices of a UV sphere. Vertices are laid out stack by
// stack from the +Z pole to the -Z pole; each stack repeats its first
// vertex at the end so (stackCount+1)*(sectorCount+1) vertices are
// produced.
func SphereVertices(center types.Vec3, radius float32, sectorCount, stackCount int) []types.Vec3 {
	if sectorCount < 3 {
		sectorCount = 3
	}
	if stackCount < 2 {
		stackCount = 2
	}

	sectorStep := 2 * math32.Pi / float32(sectorCount)
	stackStep := math32.Pi / float32(stackCount)

	out := make([]types.Vec3, 0, (stackCount+1)*(sectorCount+1))
	for i := 0; i <= stackCount; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectorCount; j++ {
			sectorAngle := float32(j) * sectorStep
			out = append(out, center.Add(types.XYZ(
				xy*math32.Cos(sectorAngle),
				xy*math32.Sin(sectorAngle),
				z,
			)))
		}
	}
	return out
}
