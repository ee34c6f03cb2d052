package bvh

import (
	"sort"
	"time"

	"github.com/boundlab/boundlab/log"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

type topDownBuilder struct {
	logger log.Logger

	tree *Tree

	// The minimum number of items that are required for creating a leaf.
	minLeafItems int

	split SplitPolicy

	// Depth cap; a negative value disables it.
	maxDepth int
}

// BuildTopDown recursively partitions objects into a binary tree.
//
// A subset becomes a leaf when it holds at most opts.MinLeafSize objects or,
// if opts.HeightLimited is set, when it sits at depth opts.MaxDepth or
// deeper. Otherwise it is ordered along axis depth%3 according to
// opts.Split and cut into two halves.
//
// Leaf volumes are fitted to the raw vertices of the leaf's objects;
// internal node volumes merge the volumes of the two children. The input
// slice is not modified. An empty object list yields an empty tree.
func BuildTopDown(objects []*Object, opts Options) *Tree {
	b := &topDownBuilder{
		logger:       log.New("bvh top-down builder"),
		tree:         newTree(2*len(objects) - 1),
		minLeafItems: opts.MinLeafSize,
		split:        opts.Split,
		maxDepth:     -1,
	}
	if b.minLeafItems < 1 {
		b.minLeafItems = 1
	}
	if opts.HeightLimited {
		b.maxDepth = opts.MaxDepth
	}

	b.tree.Stats.Method = TopDown
	b.tree.Stats.Objects = len(objects)
	if len(objects) == 0 {
		return b.tree
	}

	start := time.Now()

	// The builder reorders subsets in place so work on a private copy.
	workList := make([]*Object, len(objects))
	copy(workList, objects)
	b.tree.Root = b.partition(workList, 0)

	b.tree.Stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		b.tree.Stats.BuildTime.Nanoseconds()/1e6,
		b.tree.Stats.MaxDepth, b.tree.Stats.Nodes, b.tree.Stats.Leaves,
	)
	return b.tree
}

// Partition worklist and return node index.
func (b *topDownBuilder) partition(workList []*Object, depth int) int {
	if depth > b.tree.Stats.MaxDepth {
		b.tree.Stats.MaxDepth = depth
	}

	// Reserve a slot so parents precede their children in the node list.
	nodeIndex := len(b.tree.Nodes)
	b.tree.Nodes = append(b.tree.Nodes, Node{Left: InvalidNode, Right: InvalidNode})
	b.tree.Stats.Nodes++

	// A single object can never be split further.
	if len(workList) <= 1 || len(workList) <= b.minLeafItems ||
		(b.maxDepth >= 0 && depth >= b.maxDepth) {
		b.tree.Nodes[nodeIndex] = newFittedLeaf(workList)
		b.tree.Stats.Leaves++
		return nodeIndex
	}

	splitIndex := sortForSplit(workList, Axis(depth%3), b.split)

	// Cap the left half so that appends can never spill into the right one.
	leftWorkList := workList[:splitIndex:splitIndex]
	rightWorkList := workList[splitIndex:]

	leftIndex := b.partition(leftWorkList, depth+1)
	rightIndex := b.partition(rightWorkList, depth+1)
	b.tree.Nodes[nodeIndex] = newInternal(&b.tree.Nodes[leftIndex], &b.tree.Nodes[rightIndex], leftIndex, rightIndex)
	b.tree.Stats.Merges++

	return nodeIndex
}

// Order workList along axis according to policy and return the index of
// the first object that belongs to the right subset. The returned index is
// always in [1, len(workList)-1] for lists with at least 2 items.
func sortForSplit(workList []*Object, axis Axis, policy SplitPolicy) int {
	var key func(o *Object) float32
	switch policy {
	case MedianOfExtents:
		key = func(o *Object) float32 { return o.AABB.Max[axis] }
	case KEvenSplit:
		key = func(o *Object) float32 { return o.AABB.Min[axis] }
	default:
		key = func(o *Object) float32 { return o.Center()[axis] }
	}

	sort.SliceStable(workList, func(i, j int) bool {
		return key(workList[i]) < key(workList[j])
	})

	splitIndex := len(workList) / 2
	if policy == KEvenSplit {
		// The bias keeps exact products such as 10*0.7 from rounding down.
		splitIndex = int(float32(len(workList))*KEvenSplitFraction + 1e-3)
	}

	if splitIndex < 1 {
		splitIndex = 1
	} else if splitIndex > len(workList)-1 {
		splitIndex = len(workList) - 1
	}
	return splitIndex
}
