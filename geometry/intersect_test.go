package geometry

import (
	"testing"

	"github.com/boundlab/boundlab/types"
)

func TestSphereSphere(t *testing.T) {
	specs := []struct {
		s1, s2 Sphere
		exp    bool
	}{
		{Sphere{types.XYZ(0, 0, 0), 1}, Sphere{types.XYZ(2, 0, 0), 1}, true},
		{Sphere{types.XYZ(0, 0, 0), 1}, Sphere{types.XYZ(2.5, 0, 0), 1}, false},
		{Sphere{types.XYZ(0, 0, 0), 3}, Sphere{types.XYZ(0, 1, 0), 0.5}, true},
		{Sphere{types.XYZ(1, 1, 1), 0}, Sphere{types.XYZ(1, 1, 1), 0}, true},
	}

	for index, spec := range specs {
		if got := SphereSphere(spec.s1, spec.s2); got != spec.exp {
			t.Fatalf("[spec %d] expected SphereSphere to return %t; got %t", index, spec.exp, got)
		}
	}
}

func TestSphereAABBTangentIsNotAnIntersection(t *testing.T) {
	box := AABB{Min: types.XYZ(0, 0, 0), Max: types.XYZ(1, 1, 1)}

	tangent := Sphere{Center: types.XYZ(2, 0.5, 0.5), Radius: 1}
	if SphereAABB(tangent, box) {
		t.Fatal("expected a sphere tangent to a box face not to intersect the box")
	}

	overlapping := Sphere{Center: types.XYZ(1.5, 0.5, 0.5), Radius: 1}
	if !SphereAABB(overlapping, box) {
		t.Fatal("expected overlapping sphere to intersect the box")
	}

	inside := Sphere{Center: types.XYZ(0.5, 0.5, 0.5), Radius: 0.1}
	if !SphereAABB(inside, box) {
		t.Fatal("expected sphere inside the box to intersect the box")
	}

	// Spheres at the same separation do intersect.
	if !SphereSphere(tangent, Sphere{Center: types.XYZ(0, 0.5, 0.5), Radius: 1}) {
		t.Fatal("expected touching spheres to intersect")
	}
}

func TestAABBAABB(t *testing.T) {
	b1 := AABB{Min: types.XYZ(0, 0, 0), Max: types.XYZ(1, 1, 1)}
	specs := []struct {
		b2  AABB
		exp bool
	}{
		{AABB{Min: types.XYZ(1, 1, 1), Max: types.XYZ(2, 2, 2)}, true},
		{AABB{Min: types.XYZ(1, 0, 0), Max: types.XYZ(2, 1, 1)}, true},
		{AABB{Min: types.XYZ(1.5, 0, 0), Max: types.XYZ(2, 1, 1)}, false},
		{AABB{Min: types.XYZ(0, 2, 0), Max: types.XYZ(1, 3, 1)}, false},
		{AABB{Min: types.XYZ(0.25, 0.25, 0.25), Max: types.XYZ(0.5, 0.5, 0.5)}, true},
	}

	for index, spec := range specs {
		if got := AABBAABB(b1, spec.b2); got != spec.exp {
			t.Fatalf("[spec %d] expected AABBAABB to return %t; got %t", index, spec.exp, got)
		}
		if got := AABBAABB(spec.b2, b1); got != spec.exp {
			t.Fatalf("[spec %d] expected AABBAABB to be symmetric", index)
		}
	}
}

func TestPointTests(t *testing.T) {
	s := Sphere{Center: types.XYZ(0, 0, 0), Radius: 1}
	if !PointSphere(Point{types.XYZ(1, 0, 0)}, s) {
		t.Fatal("expected point on sphere surface to be inside")
	}
	if PointSphere(Point{types.XYZ(1, 1, 0)}, s) {
		t.Fatal("expected point outside sphere not to intersect")
	}

	box := NewAABBFromCenter(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	if !PointAABB(Point{types.XYZ(1, -1, 0.5)}, box) {
		t.Fatal("expected point on box boundary to be inside")
	}
	if PointAABB(Point{types.XYZ(1.01, 0, 0)}, box) {
		t.Fatal("expected point outside box not to intersect")
	}
}

func TestPointPlaneIsSlabMembership(t *testing.T) {
	// y = 2
	pl := NewPlane(types.XYZ(0, 1, 0), -2)

	if !PointPlane(Point{types.XYZ(5, 2, -3)}, pl) {
		t.Fatal("expected point on plane to intersect")
	}
	if !PointPlane(Point{types.XYZ(0, 2.005, 0)}, pl) {
		t.Fatal("expected point within slab to intersect")
	}
	if PointPlane(Point{types.XYZ(0, 2.02, 0)}, pl) {
		t.Fatal("expected point outside slab not to intersect")
	}
	if PointPlane(Point{types.XYZ(0, -10, 0)}, pl) {
		t.Fatal("expected point far below plane not to intersect")
	}
}

func TestPointTriangle(t *testing.T) {
	tri := Triangle{
		V1: types.XYZ(0, 0, 0),
		V2: types.XYZ(1, 0, 0),
		V3: types.XYZ(0, 1, 0),
	}

	specs := []struct {
		p   types.Vec3
		exp bool
	}{
		{types.XYZ(0.25, 0.25, 0), true},
		{types.XYZ(0, 0, 0), true},
		{types.XYZ(0.5, 0, 0), true},
		// Edge opposite V1 is excluded.
		{types.XYZ(0.5, 0.5, 0), false},
		{types.XYZ(1, 1, 0), false},
		{types.XYZ(-0.1, 0.5, 0), false},
	}

	for index, spec := range specs {
		if got := PointTriangle(Point{spec.p}, tri); got != spec.exp {
			t.Fatalf("[spec %d] expected PointTriangle(%v) to return %t; got %t", index, spec.p, spec.exp, got)
		}
	}

	degenerate := Triangle{V1: types.XYZ(0, 0, 0), V2: types.XYZ(1, 0, 0), V3: types.XYZ(2, 0, 0)}
	if PointTriangle(Point{types.XYZ(0.5, 0, 0)}, degenerate) {
		t.Fatal("expected degenerate triangle not to contain any point")
	}
}

func TestPlaneAABBAndSphere(t *testing.T) {
	// Plane with normal +X and w = 2 is evaluated as dot(n, c) - 2.
	pl := Plane{Normal: types.XYZW(1, 0, 0, 2)}

	if !PlaneAABB(pl, NewAABBFromCenter(types.XYZ(2.5, 0, 0), types.XYZ(0.5, 1, 1))) {
		t.Fatal("expected box touching the plane to intersect")
	}
	if PlaneAABB(pl, NewAABBFromCenter(types.XYZ(4, 0, 0), types.XYZ(0.5, 1, 1))) {
		t.Fatal("expected box away from the plane not to intersect")
	}

	if !PlaneSphere(pl, Sphere{Center: types.XYZ(3, 0, 0), Radius: 1}) {
		t.Fatal("expected tangent sphere to intersect the plane")
	}
	if PlaneSphere(pl, Sphere{Center: types.XYZ(3.5, 0, 0), Radius: 1}) {
		t.Fatal("expected distant sphere not to intersect the plane")
	}
}

func TestRayPlane(t *testing.T) {
	// z = 5
	pl := NewPlane(types.XYZ(0, 0, 1), -5)

	hit, p := RayPlane(Ray{Start: types.XYZ(1, 2, 0), Direction: types.XYZ(0, 0, 2)}, pl)
	if !hit {
		t.Fatal("expected ray to hit the plane")
	}
	if exp := types.XYZ(1, 2, 5); !p.ApproxEqual(exp, 1e-5) {
		t.Fatalf("expected hit point %v; got %v", exp, p)
	}

	if hit, _ = RayPlane(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 0, -1)}, pl); hit {
		t.Fatal("expected plane behind the ray not to be hit")
	}
	if hit, _ = RayPlane(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(1, 0, 0)}, pl); hit {
		t.Fatal("expected parallel ray not to hit the plane")
	}
}

func TestRayTriangle(t *testing.T) {
	tri := Triangle{
		V1: types.XYZ(-1, -1, 0),
		V2: types.XYZ(1, -1, 0),
		V3: types.XYZ(0, 1, 0),
	}

	hit, p := RayTriangle(Ray{Start: types.XYZ(0, 0, 3), Direction: types.XYZ(0, 0, -1)}, tri)
	if !hit {
		t.Fatal("expected ray to hit the triangle")
	}
	if !p.ApproxEqual(types.XYZ(0, 0, 0), 1e-6) {
		t.Fatalf("expected hit at origin; got %v", p)
	}

	if hit, _ = RayTriangle(Ray{Start: types.XYZ(0, 0, 3), Direction: types.XYZ(0, 0, 1)}, tri); hit {
		t.Fatal("expected triangle behind the ray not to be hit")
	}
	if hit, _ = RayTriangle(Ray{Start: types.XYZ(5, 5, 3), Direction: types.XYZ(0, 0, -1)}, tri); hit {
		t.Fatal("expected ray to miss the triangle")
	}
	if hit, _ = RayTriangle(Ray{Start: types.XYZ(0, 0, 3), Direction: types.XYZ(0, 0, 0)}, tri); hit {
		t.Fatal("expected zero-length ray not to hit")
	}

	degenerate := Triangle{V1: types.XYZ(0, 0, 0), V2: types.XYZ(1, 0, 0), V3: types.XYZ(2, 0, 0)}
	if hit, _ = RayTriangle(Ray{Start: types.XYZ(0.5, 0, 1), Direction: types.XYZ(0, 0, -1)}, degenerate); hit {
		t.Fatal("expected zero-area triangle not to be hit")
	}
}

func TestRayAABB(t *testing.T) {
	box := AABB{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}

	hit, p := RayAABB(Ray{Start: types.XYZ(-5, 0, 0), Direction: types.XYZ(1, 0, 0)}, box)
	if !hit {
		t.Fatal("expected ray to hit the box")
	}
	if !p.ApproxEqual(types.XYZ(-1, 0, 0), 1e-6) {
		t.Fatalf("expected entry point (-1, 0, 0); got %v", p)
	}

	hit, p = RayAABB(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 2, 0)}, box)
	if !hit {
		t.Fatal("expected ray starting inside the box to hit it")
	}
	if !p.ApproxEqual(types.XYZ(0, 1, 0), 1e-6) {
		t.Fatalf("expected exit point (0, 1, 0); got %v", p)
	}

	if hit, _ = RayAABB(Ray{Start: types.XYZ(5, 0, 0), Direction: types.XYZ(1, 0, 0)}, box); hit {
		t.Fatal("expected box behind the ray not to be hit")
	}
	if hit, _ = RayAABB(Ray{Start: types.XYZ(-5, 3, 0), Direction: types.XYZ(1, 0, 0)}, box); hit {
		t.Fatal("expected parallel ray outside the slab to miss")
	}
	if hit, _ = RayAABB(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 0, 0)}, box); hit {
		t.Fatal("expected zero-length ray not to hit")
	}
}

func TestRaySphere(t *testing.T) {
	s := Sphere{Center: types.XYZ(0, 0, -5), Radius: 1}

	hit, p := RaySphere(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 0, -1)}, s)
	if !hit {
		t.Fatal("expected ray to hit the sphere")
	}
	if !p.ApproxEqual(types.XYZ(0, 0, -4), 1e-5) {
		t.Fatalf("expected hit point (0, 0, -4); got %v", p)
	}

	if hit, _ = RaySphere(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 0, 1)}, s); hit {
		t.Fatal("expected sphere behind the ray not to be hit")
	}
	if hit, _ = RaySphere(Ray{Start: types.XYZ(0, 3, 0), Direction: types.XYZ(0, 0, -1)}, s); hit {
		t.Fatal("expected ray to miss the sphere")
	}
	if hit, _ = RaySphere(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, 0, 0)}, s); hit {
		t.Fatal("expected zero-length ray not to hit")
	}
}

func TestAABBForms(t *testing.T) {
	b := NewAABBFromCenter(types.XYZ(1, 2, 3), types.XYZ(0.5, 1, 1.5))
	if b.Min != types.XYZ(0.5, 1, 1.5) || b.Max != types.XYZ(1.5, 3, 4.5) {
		t.Fatalf("expected min/max to be derived from center and half extents; got %v", b)
	}
	if b.Center() != types.XYZ(1, 2, 3) {
		t.Fatalf("expected center (1, 2, 3); got %v", b.Center())
	}
	if b.HalfExtents() != types.XYZ(0.5, 1, 1.5) {
		t.Fatalf("expected half extents (0.5, 1, 1.5); got %v", b.HalfExtents())
	}
	if b.Volume() != 6 {
		t.Fatalf("expected volume 6; got %f", b.Volume())
	}
}

func TestPlaneOffsetConventions(t *testing.T) {
	pl := NewPlane(types.XYZ(0, 1, 0), 2)

	// dot(n, x) + w == 0 places the plane at y = -2.
	if !PointPlane(Point{types.XYZ(0, -2, 0)}, pl) {
		t.Fatal("expected point at y = -2 to lie on the plane")
	}
	if PointPlane(Point{types.XYZ(0, 2, 0)}, pl) {
		t.Fatal("expected point at y = 2 not to lie on the plane")
	}
	hit, p := RayPlane(Ray{Start: types.XYZ(0, 0, 0), Direction: types.XYZ(0, -1, 0)}, pl)
	if !hit || !p.ApproxEqual(types.XYZ(0, -2, 0), 1e-5) {
		t.Fatalf("expected ray to cross the plane at (0, -2, 0); got %t, %v", hit, p)
	}

	// dot(n, c) - w places the plane at y = 2.
	if !PlaneSphere(pl, Sphere{types.XYZ(0, 2, 0), 0.1}) {
		t.Fatal("expected sphere at y = 2 to touch the plane")
	}
	if PlaneSphere(pl, Sphere{types.XYZ(0, -2, 0), 0.1}) {
		t.Fatal("expected sphere at y = -2 not to touch the plane")
	}
	if !PlaneAABB(pl, NewAABBFromCenter(types.XYZ(0, 2, 0), types.XYZ(0.1, 0.1, 0.1))) {
		t.Fatal("expected box at y = 2 to straddle the plane")
	}
	if PlaneAABB(pl, NewAABBFromCenter(types.XYZ(0, -2, 0), types.XYZ(0.1, 0.1, 0.1))) {
		t.Fatal("expected box at y = -2 not to straddle the plane")
	}
}
