package geometry

import (
	"github.com/boundlab/boundlab/types"
	"github.com/chewxy/math32"
)

const (
	// Half thickness of the slab used by PointPlane.
	PointPlaneEpsilon float32 = 0.01

	// Determinant threshold below which a ray is treated as parallel to a
	// triangle.
	rayTriangleEpsilon float32 = 1e-8

	// Denominator threshold below which a ray is treated as parallel to a
	// plane.
	rayPlaneEpsilon float32 = 1e-6

	// Direction component threshold below which a ray is treated as
	// parallel to a pair of box slabs.
	raySlabEpsilon float32 = 1e-12
)

// SphereSphere returns true if the spheres overlap or touch.
func SphereSphere(s1, s2 Sphere) bool {
	return s1.Center.Distance(s2.Center) <= s1.Radius+s2.Radius
}

// SphereAABB clamps the sphere center into the box and reports an
// intersection when the clamped point is strictly closer than the radius. A
// sphere that is exactly tangent to a box face does not intersect it.
func SphereAABB(s Sphere, b AABB) bool {
	closest := s.Center.Clamp(b.Min, b.Max)
	return closest.Distance(s.Center) < s.Radius
}

// AABBAABB compares center distances against the summed half extents on
// every axis. Boxes that share a face, edge or corner intersect.
func AABBAABB(b1, b2 AABB) bool {
	d := b1.Center().Sub(b2.Center()).Abs()
	h := b1.HalfExtents().Add(b2.HalfExtents())
	return d[0] <= h[0] && d[1] <= h[1] && d[2] <= h[2]
}

// PointSphere returns true if p lies inside or on the sphere.
func PointSphere(p Point, s Sphere) bool {
	return p.Coordinates.Distance(s.Center) <= s.Radius
}

// PointAABB returns true if p lies inside or on the box.
func PointAABB(p Point, b AABB) bool {
	return b.Contains(p.Coordinates)
}

// PointPlane tests membership of p in a thin slab of half thickness
// PointPlaneEpsilon around the plane. It does not report which side of the
// plane p lies on.
func PointPlane(p Point, pl Plane) bool {
	return math32.Abs(pl.Normal.Vec3().Dot(p.Coordinates)+pl.Normal[3]) < PointPlaneEpsilon
}

// PointTriangle uses barycentric coordinates (u, v) relative to V1. The
// point is inside when u >= 0, v >= 0 and u+v < 1; points on the edge
// opposite V1 are rejected. The point is assumed to lie in the triangle
// plane; degenerate triangles never contain a point.
func PointTriangle(p Point, tri Triangle) bool {
	v0 := tri.V3.Sub(tri.V1)
	v1 := tri.V2.Sub(tri.V1)
	v2 := p.Coordinates.Sub(tri.V1)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return u >= 0 && v >= 0 && u+v < 1
}

// PlaneAABB projects the box half extents onto the plane normal and
// compares the result against the signed distance of the box center, given
// by dot(normal.xyz, center) - normal.w.
func PlaneAABB(pl Plane, b AABB) bool {
	n := pl.Normal.Vec3()
	e := b.HalfExtents()
	r := e[0]*math32.Abs(n[0]) + e[1]*math32.Abs(n[1]) + e[2]*math32.Abs(n[2])
	s := n.Dot(b.Center()) - pl.Normal[3]
	return math32.Abs(s) <= r
}

// PlaneSphere returns true if the distance from the sphere center,
// dot(normal.xyz, center) - normal.w, is within the sphere radius.
func PlaneSphere(pl Plane, s Sphere) bool {
	return math32.Abs(pl.Normal.Vec3().Dot(s.Center)-pl.Normal[3]) <= s.Radius
}

// RayPlane returns the point where the ray crosses the plane
// dot(normal.xyz, x) + normal.w = 0. Rays parallel to the plane and planes
// behind the ray start do not intersect.
func RayPlane(r Ray, pl Plane) (bool, types.Vec3) {
	n := pl.Normal.Vec3()
	denom := n.Dot(r.Direction)
	if math32.Abs(denom) <= rayPlaneEpsilon {
		return false, types.Vec3{}
	}

	t := -(n.Dot(r.Start) + pl.Normal[3]) / denom
	if t < 0 {
		return false, types.Vec3{}
	}
	return true, r.At(t)
}

// RayTriangle implements the Moller-Trumbore test.
func RayTriangle(r Ray, tri Triangle) (bool, types.Vec3) {
	e1 := tri.V2.Sub(tri.V1)
	e2 := tri.V3.Sub(tri.V1)
	pvec := r.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if math32.Abs(det) < rayTriangleEpsilon {
		return false, types.Vec3{}
	}

	invDet := 1 / det
	tvec := r.Start.Sub(tri.V1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return false, types.Vec3{}
	}

	qvec := tvec.Cross(e1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return false, types.Vec3{}
	}

	t := e2.Dot(qvec) * invDet
	if t < 0 {
		return false, types.Vec3{}
	}
	return true, r.At(t)
}

// RayAABB implements the slab method. The returned point is the first
// crossing with t >= 0; for rays starting inside the box this is the exit
// point.
func RayAABB(r Ray, b AABB) (bool, types.Vec3) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if math32.Abs(r.Direction[axis]) < raySlabEpsilon {
			// Parallel to this slab pair; the start must lie between them.
			if r.Start[axis] < b.Min[axis] || r.Start[axis] > b.Max[axis] {
				return false, types.Vec3{}
			}
			continue
		}

		invDir := 1 / r.Direction[axis]
		t1 := (b.Min[axis] - r.Start[axis]) * invDir
		t2 := (b.Max[axis] - r.Start[axis]) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	// A zero direction never narrows the interval.
	if math32.IsInf(tmin, -1) {
		return false, types.Vec3{}
	}

	if tmax < 0 || tmin > tmax {
		return false, types.Vec3{}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	return true, r.At(t)
}

// RaySphere solves the ray/sphere quadratic and returns the nearest root
// with t >= 0.
func RaySphere(r Ray, s Sphere) (bool, types.Vec3) {
	oc := r.Start.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return false, types.Vec3{}
	}
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return false, types.Vec3{}
	}

	sqrtDisc := math32.Sqrt(disc)
	t := (-b - sqrtDisc) / (2 * a)
	if t < 0 {
		t = (-b + sqrtDisc) / (2 * a)
	}
	if t < 0 {
		return false, types.Vec3{}
	}
	return true, r.At(t)
}
