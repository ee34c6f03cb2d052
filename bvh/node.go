package bvh

import (
	"github.com/boundlab/boundlab/bounds"
	"github.com/boundlab/boundlab/geometry"
)

// InvalidNode marks a missing child or the root of an empty tree.
const InvalidNode = -1

type NodeKind uint8

const (
	Leaf NodeKind = iota
	Internal
)

func (k NodeKind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "internal"
}

// Node is a hierarchy node. Leaves own a slice of objects and no children;
// internal nodes own exactly two children, referenced by their index in the
// tree's node list, and no objects.
//
// A node's volumes are written once when the node is created: leaves fit
// them to their objects and internal nodes merge the volumes of their
// children.
type Node struct {
	Kind NodeKind

	AABB          geometry.AABB
	RitterSphere  geometry.Sphere
	LarssonSphere geometry.Sphere
	PCASphere     geometry.Sphere

	// Leaf only.
	Objects []*Object

	// Internal only.
	Left  int
	Right int
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// Get the node's volume of the requested kind.
func (n *Node) Volume(kind VolumeKind) (Volume, error) {
	v := Volume{Kind: kind}
	switch kind {
	case AABBVolume:
		v.Box = n.AABB
	case RitterVolume:
		v.Sphere = n.RitterSphere
	case LarssonVolume:
		v.Sphere = n.LarssonSphere
	case PCAVolume:
		v.Sphere = n.PCASphere
	default:
		return v, ErrUnknownVolumeKind
	}
	return v, nil
}

// Create a leaf whose volumes are fitted to the pooled vertices of objects.
func newFittedLeaf(objects []*Object) Node {
	vertices := pooledVertices(objects)
	return Node{
		Kind:          Leaf,
		AABB:          bounds.AABB(vertices),
		RitterSphere:  bounds.RitterSphere(vertices),
		LarssonSphere: bounds.LarssonSphere(vertices),
		PCASphere:     bounds.PCASphere(vertices),
		Objects:       objects,
		Left:          InvalidNode,
		Right:         InvalidNode,
	}
}

// Create a leaf that reuses the cached volumes of a single object.
func newObjectLeaf(obj *Object) Node {
	return Node{
		Kind:          Leaf,
		AABB:          obj.AABB,
		RitterSphere:  obj.RitterSphere,
		LarssonSphere: obj.LarssonSphere,
		PCASphere:     obj.PCASphere,
		Objects:       []*Object{obj},
		Left:          InvalidNode,
		Right:         InvalidNode,
	}
}

// Create an internal node whose volumes merge those of its children.
func newInternal(left, right *Node, leftIndex, rightIndex int) Node {
	return Node{
		Kind:          Internal,
		AABB:          bounds.MergeAABB(left.AABB, right.AABB),
		RitterSphere:  bounds.MergeSphere(left.RitterSphere, right.RitterSphere),
		LarssonSphere: bounds.MergeSphere(left.LarssonSphere, right.LarssonSphere),
		PCASphere:     bounds.MergeSphere(left.PCASphere, right.PCASphere),
		Left:          leftIndex,
		Right:         rightIndex,
	}
}
