package bvh

import (
	"strings"
	"time"

	"github.com/boundlab/boundlab/geometry"
)

// AllLevels selects every tree level in Tree.Volumes.
const AllLevels = -1

// VolumeKind selects one of the bounding volumes stored in each node.
type VolumeKind uint8

const (
	AABBVolume VolumeKind = iota
	RitterVolume
	LarssonVolume
	PCAVolume
)

// All volume kinds in declaration order.
var VolumeKinds = []VolumeKind{AABBVolume, RitterVolume, LarssonVolume, PCAVolume}

func (k VolumeKind) String() string {
	switch k {
	case AABBVolume:
		return "aabb"
	case RitterVolume:
		return "ritter"
	case LarssonVolume:
		return "larsson"
	case PCAVolume:
		return "pca"
	}
	return "unknown"
}

// Returns true if the volume is a sphere.
func (k VolumeKind) IsSphere() bool {
	return k == RitterVolume || k == LarssonVolume || k == PCAVolume
}

// Parse a volume kind name.
func ParseVolumeKind(name string) (VolumeKind, error) {
	switch strings.ToLower(name) {
	case "aabb", "box":
		return AABBVolume, nil
	case "ritter":
		return RitterVolume, nil
	case "larsson":
		return LarssonVolume, nil
	case "pca":
		return PCAVolume, nil
	}
	return AABBVolume, ErrUnknownVolumeKind
}

// Volume is a tagged bounding volume: Box is set for AABBVolume and Sphere
// for the sphere kinds.
type Volume struct {
	Kind   VolumeKind
	Box    geometry.AABB
	Sphere geometry.Sphere

	// Tree level of the node that owns the volume; the root is level 0.
	Level int

	// Index of the owning node.
	Node int
}

// Stats collects hierarchy build statistics.
type Stats struct {
	Method    Method
	Objects   int
	Nodes     int
	Leaves    int
	MaxDepth  int
	Merges    int
	BuildTime time.Duration
}

// Tree stores the hierarchy nodes in a single list; nodes reference their
// children by index. The whole tree is released as one value when it is
// replaced.
type Tree struct {
	Nodes []Node
	Root  int
	Stats Stats
}

func newTree(capacity int) *Tree {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree{
		Nodes: make([]Node, 0, capacity),
		Root:  InvalidNode,
	}
}

// Returns true if the tree has no nodes.
func (t *Tree) Empty() bool {
	return t == nil || t.Root == InvalidNode
}

// Get the node at the given index.
func (t *Tree) Node(index int) *Node {
	return &t.Nodes[index]
}

// Depth returns the number of levels in the tree. An empty tree has depth 0
// and a tree with a single leaf has depth 1.
func (t *Tree) Depth() int {
	if t.Empty() {
		return 0
	}
	return t.NodeDepth(t.Root)
}

// NodeDepth returns the number of levels in the subtree rooted at index.
func (t *Tree) NodeDepth(index int) int {
	if index == InvalidNode {
		return 0
	}

	node := &t.Nodes[index]
	if node.IsLeaf() {
		return 1
	}

	left := t.NodeDepth(node.Left)
	right := t.NodeDepth(node.Right)
	if left > right {
		return left + 1
	}
	return right + 1
}

// Walk visits nodes in breadth-first order starting from the root. The
// visit stops early if fn returns false.
func (t *Tree) Walk(fn func(index, level int) bool) {
	if t.Empty() {
		return
	}

	type entry struct{ index, level int }
	queue := []entry{{t.Root, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !fn(cur.index, cur.level) {
			return
		}

		node := &t.Nodes[cur.index]
		if !node.IsLeaf() {
			queue = append(queue, entry{node.Left, cur.level + 1}, entry{node.Right, cur.level + 1})
		}
	}
}

// Volumes lists the volume of the requested kind for every node at the
// given level, or for every node when level is AllLevels. Nodes are listed
// in breadth-first order.
func (t *Tree) Volumes(level int, kind VolumeKind) ([]Volume, error) {
	if kind > PCAVolume {
		return nil, ErrUnknownVolumeKind
	}

	out := make([]Volume, 0)
	t.Walk(func(index, nodeLevel int) bool {
		if level != AllLevels && nodeLevel > level {
			return false
		}
		if level == AllLevels || nodeLevel == level {
			v, _ := t.Nodes[index].Volume(kind)
			v.Level = nodeLevel
			v.Node = index
			out = append(out, v)
		}
		return true
	})
	return out, nil
}

// Objects returns the objects of all leaves in depth-first, left to right
// order.
func (t *Tree) Objects() []*Object {
	out := make([]*Object, 0)
	if t.Empty() {
		return out
	}

	var visit func(index int)
	visit = func(index int) {
		node := &t.Nodes[index]
		if node.IsLeaf() {
			out = append(out, node.Objects...)
			return
		}
		visit(node.Left)
		visit(node.Right)
	}
	visit(t.Root)
	return out
}

// Leaves returns the indices of all leaf nodes.
func (t *Tree) Leaves() []int {
	out := make([]int, 0)
	t.Walk(func(index, _ int) bool {
		if t.Nodes[index].IsLeaf() {
			out = append(out, index)
		}
		return true
	})
	return out
}
