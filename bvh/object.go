package bvh

import (
	"github.com/boundlab/boundlab/bounds"
	"github.com/boundlab/boundlab/geometry"
	"github.com/boundlab/boundlab/types"
)

// Object is the unit partitioned by the hierarchy builders. It owns the
// vertex positions of one mesh together with bounding volumes fitted to
// them when the object is created. Objects are not modified afterwards.
type Object struct {
	Name     string
	Vertices []types.Vec3

	AABB          geometry.AABB
	RitterSphere  geometry.Sphere
	LarssonSphere geometry.Sphere
	PCASphere     geometry.Sphere
}

// Create an object and fit its cached bounding volumes. Callers must not
// pass an empty vertex list; builders assume every object has at least one
// vertex.
func NewObject(name string, vertices []types.Vec3) *Object {
	return &Object{
		Name:          name,
		Vertices:      vertices,
		AABB:          bounds.AABB(vertices),
		RitterSphere:  bounds.RitterSphere(vertices),
		LarssonSphere: bounds.LarssonSphere(vertices),
		PCASphere:     bounds.PCASphere(vertices),
	}
}

// Get the object's bounding box center.
func (o *Object) Center() types.Vec3 {
	return o.AABB.Center()
}

// Collect the vertices of all objects into a single list.
func pooledVertices(objects []*Object) []types.Vec3 {
	count := 0
	for _, o := range objects {
		count += len(o.Vertices)
	}

	out := make([]types.Vec3, 0, count)
	for _, o := range objects {
		out = append(out, o.Vertices...)
	}
	return out
}
