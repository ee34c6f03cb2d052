// Package bounds fits bounding volumes around point sets and merges
// existing volumes.
//
// Every fitter is deterministic and total: an empty point set yields the
// zero volume (a zero-radius sphere or a degenerate box at the origin).
package bounds

import (
	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/types"
)

const (
	// Number of power iterations used to find the principal axis.
	powerIterations = 10
)

// AABB computes the component-wise min/max of points.
func AABB(points []types.Vec3) geometry.AABB {
	if len(points) == 0 {
		return geometry.AABB{}
	}

	box := geometry.AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = types.MinVec3(box.Min, p)
		box.Max = types.MaxVec3(box.Max, p)
	}
	return box
}

// RitterSphere fits a sphere using Ritter's two pass method. The seed
// sphere spans the points y and z where y is the point farthest from the
// first point and z is the point farthest from y. A second pass grows the
// sphere to include any point left outside.
//
// The result always contains every point but is not the minimal enclosing
// sphere.
func RitterSphere(points []types.Vec3) geometry.Sphere {
	if len(points) == 0 {
		return geometry.Sphere{}
	}

	y := farthestFrom(points, points[0])
	z := farthestFrom(points, y)

	s := geometry.Sphere{
		Center: y.Add(z).Mul(0.5),
		Radius: y.Distance(z) * 0.5,
	}
	return growToInclude(s, points)
}

// LarssonSphere seeds the sphere at the centroid of points with a radius
// equal to the distance of the farthest point and then applies the same
// growth pass as RitterSphere. It generally produces a different, looser
// sphere than RitterSphere for the same input.
func LarssonSphere(points []types.Vec3) geometry.Sphere {
	if len(points) == 0 {
		return geometry.Sphere{}
	}
	return seededSphere(points, Centroid(points))
}

// LarssonSphereBoxSeed works like LarssonSphere but seeds the center at the
// midpoint of the point set's AABB.
func LarssonSphereBoxSeed(points []types.Vec3) geometry.Sphere {
	if len(points) == 0 {
		return geometry.Sphere{}
	}
	return seededSphere(points, AABB(points).Center())
}

// PCASphere centers the sphere on the extent of points along their
// principal axis. The axis is found with a fixed number of power iterations
// over the covariance matrix starting from (1, 1, 1).
//
// Only the spread along the principal axis is bounded: points that lie far
// from that axis may end up outside the returned sphere.
func PCASphere(points []types.Vec3) geometry.Sphere {
	if len(points) == 0 {
		return geometry.Sphere{}
	}

	centroid := Centroid(points)
	axis := PrincipalAxis(Covariance(points, centroid))

	minProj, maxProj := ProjectedExtent(points, centroid, axis)
	return geometry.Sphere{
		Center: centroid.Add(axis.Mul((minProj + maxProj) * 0.5)),
		Radius: (maxProj - minProj) * 0.5,
	}
}

// Centroid returns the mean of points.
func Centroid(points []types.Vec3) types.Vec3 {
	if len(points) == 0 {
		return types.Vec3{}
	}

	var sum types.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float32(len(points)))
}

// Covariance returns the population covariance matrix of points around
// centroid.
func Covariance(points []types.Vec3, centroid types.Vec3) types.Mat3 {
	var cov types.Mat3
	if len(points) == 0 {
		return cov
	}

	for _, p := range points {
		cov = cov.Add(types.OuterProduct(p.Sub(centroid)))
	}
	return cov.Mul(1.0 / float32(len(points)))
}

// PrincipalAxis approximates the dominant eigenvector of cov. Iteration
// stops early, keeping the last unit vector, if cov maps the current
// estimate to zero.
func PrincipalAxis(cov types.Mat3) types.Vec3 {
	axis := types.Vec3{1, 1, 1}.Normalize()
	for i := 0; i < powerIterations; i++ {
		next := cov.MulVec3(axis).Normalize()
		if next == (types.Vec3{}) {
			break
		}
		axis = next
	}
	return axis
}

// ProjectedExtent returns the min and max signed projections of points onto
// axis, measured from origin.
func ProjectedExtent(points []types.Vec3, origin, axis types.Vec3) (minProj, maxProj float32) {
	for i, p := range points {
		proj := p.Sub(origin).Dot(axis)
		if i == 0 || proj < minProj {
			minProj = proj
		}
		if i == 0 || proj > maxProj {
			maxProj = proj
		}
	}
	return minProj, maxProj
}

// Build a sphere around seed that reaches the farthest point and run the
// growth pass over it.
func seededSphere(points []types.Vec3, seed types.Vec3) geometry.Sphere {
	s := geometry.Sphere{Center: seed}
	for _, p := range points {
		if d := p.Distance(seed); d > s.Radius {
			s.Radius = d
		}
	}
	return growToInclude(s, points)
}

// Grow s in a single pass so that it includes every point. Each outside
// point moves the center towards it by the minimum amount that keeps the
// opposite side of the sphere fixed.
func growToInclude(s geometry.Sphere, points []types.Vec3) geometry.Sphere {
	for _, p := range points {
		d := p.Distance(s.Center)
		if d <= s.Radius {
			continue
		}

		newRadius := (s.Radius + d) * 0.5
		s.Center = s.Center.Add(p.Sub(s.Center).Mul((newRadius - s.Radius) / d))
		s.Radius = newRadius
	}
	return s
}

// Find the point in points that is farthest from p.
func farthestFrom(points []types.Vec3, p types.Vec3) types.Vec3 {
	best := points[0]
	bestDist := best.Sub(p).LenSq()
	for _, q := range points[1:] {
		if d := q.Sub(p).LenSq(); d > bestDist {
			best, bestDist = q, d
		}
	}
	return best
}
