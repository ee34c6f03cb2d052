package bounds

import (
	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/types"
)

// MergeAABB returns the smallest box containing both a and b.
func MergeAABB(a, b geometry.AABB) geometry.AABB {
	return geometry.AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// MergeSphere returns the smallest sphere containing both a and b. If one
// sphere already contains the other, the containing sphere is returned
// unchanged. Otherwise the new sphere spans the two far extremes along the
// line joining the centers.
func MergeSphere(a, b geometry.Sphere) geometry.Sphere {
	dir := b.Center.Sub(a.Center)
	dist := dir.Len()

	// Coincident centers fall into one of these two cases.
	if dist+b.Radius <= a.Radius {
		return a
	}
	if dist+a.Radius <= b.Radius {
		return b
	}

	newRadius := (dist + a.Radius + b.Radius) * 0.5
	return geometry.Sphere{
		Center: a.Center.Add(dir.Mul((newRadius - a.Radius) / dist)),
		Radius: newRadius,
	}
}

// MergeAABBs folds MergeAABB over boxes. An empty list yields the zero box.
func MergeAABBs(boxes []geometry.AABB) geometry.AABB {
	if len(boxes) == 0 {
		return geometry.AABB{}
	}
	out := boxes[0]
	for _, b := range boxes[1:] {
		out = MergeAABB(out, b)
	}
	return out
}

// MergeSpheres folds MergeSphere over spheres. An empty list yields the
// zero sphere.
func MergeSpheres(spheres []geometry.Sphere) geometry.Sphere {
	if len(spheres) == 0 {
		return geometry.Sphere{}
	}
	out := spheres[0]
	for _, s := range spheres[1:] {
		out = MergeSphere(out, s)
	}
	return out
}
