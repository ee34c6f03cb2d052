package geometry

import "github.com/boundlab/boundlab/types"

// Point is a sample location used as intersection test input.
type Point struct {
	Coordinates types.Vec3
}

// Plane stores the unit normal in XYZ and the offset term in W.
//
// The tests do not agree on the sign of W. PointPlane and RayPlane use the
// plane dot(normal.xyz, x) + normal.w == 0 while PlaneAABB and PlaneSphere
// measure the signed distance as dot(normal.xyz, c) - normal.w. The same
// Plane value therefore sits at opposite offsets along the normal for the
// two groups of tests.
type Plane struct {
	Normal types.Vec4
}

// Create a plane from a normal and an offset. The normal and the offset are
// scaled together so that the stored normal has unit length.
func NewPlane(normal types.Vec3, offset float32) Plane {
	l := normal.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: normal.Mul(1 / l).Vec4(offset / l)}
}

// Triangle is defined by its three vertices; the face normal is computed on
// demand.
type Triangle struct {
	V1, V2, V3 types.Vec3
}

// Get the non-normalized face normal.
func (tri Triangle) Normal() types.Vec3 {
	return tri.V2.Sub(tri.V1).Cross(tri.V3.Sub(tri.V1))
}

// Sphere is a center point and a non-negative radius.
type Sphere struct {
	Center types.Vec3
	Radius float32
}

// Check whether p lies inside the sphere allowing for an eps tolerance.
func (s Sphere) Contains(p types.Vec3, eps float32) bool {
	return p.Distance(s.Center) <= s.Radius+eps
}

// AABB is an axis-aligned box. The center/half-extents form is derived from
// Min and Max so the two representations can never disagree.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Create an AABB from its center and half extents.
func NewAABBFromCenter(center, halfExtents types.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Get the box center.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Get the box half extents.
func (b AABB) HalfExtents() types.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Get the box side lengths.
func (b AABB) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Get the box volume.
func (b AABB) Volume() float32 {
	side := b.Size()
	return side[0] * side[1] * side[2]
}

// Check whether p lies inside the box. The test is closed on all faces.
func (b AABB) Contains(p types.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Get the 8 box corners. The first four corners form the bottom (min Y)
// face and the last four the top face, both in the same winding.
func (b AABB) Corners() [8]types.Vec3 {
	return [8]types.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// BoxEdges lists pairs of Corners() indices that form the 12 box edges.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Ray is a start point and a direction. The direction does not need to be
// normalized; ray parameters are expressed in units of its length.
type Ray struct {
	Start     types.Vec3
	Direction types.Vec3
}

// Get the point at parameter t along the ray.
func (r Ray) At(t float32) types.Vec3 {
	return r.Start.Add(r.Direction.Mul(t))
}
