package bvh

import (
	"time"

	"github.com/boundlab/boundlab/bounds"
	"github.com/boundlab/boundlab/log"
)

// BuildBottomUp starts with one leaf per object and repeatedly merges the
// pair of active nodes with the lowest MergeCost until a single root
// remains. Leaves reuse the cached volumes of their object and internal
// nodes merge the volumes of their children.
//
// Each merge step scans every active pair so the build is O(n^3); it is
// meant for scenes with at most a few hundred objects. An empty object list
// yields an empty tree.
func BuildBottomUp(objects []*Object) *Tree {
	logger := log.New("bvh bottom-up builder")
	tree := newTree(2*len(objects) - 1)
	tree.Stats.Method = BottomUp
	tree.Stats.Objects = len(objects)
	if len(objects) == 0 {
		return tree
	}

	start := time.Now()

	active := make([]int, 0, len(objects))
	for _, obj := range objects {
		tree.Nodes = append(tree.Nodes, newObjectLeaf(obj))
		active = append(active, len(tree.Nodes)-1)
	}
	tree.Stats.Leaves = len(objects)

	for len(active) > 1 {
		bestI, bestJ := 0, 1
		bestCost := MergeCost(&tree.Nodes[active[0]], &tree.Nodes[active[1]])
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				cost := MergeCost(&tree.Nodes[active[i]], &tree.Nodes[active[j]])
				if cost < bestCost {
					bestI, bestJ, bestCost = i, j, cost
				}
			}
		}

		leftIndex, rightIndex := active[bestI], active[bestJ]
		tree.Nodes = append(tree.Nodes, newInternal(&tree.Nodes[leftIndex], &tree.Nodes[rightIndex], leftIndex, rightIndex))
		tree.Stats.Merges++

		// bestJ > bestI so removing bestJ first keeps bestI valid.
		active = append(active[:bestJ], active[bestJ+1:]...)
		active = append(active[:bestI], active[bestI+1:]...)
		active = append(active, len(tree.Nodes)-1)
	}

	tree.Root = active[0]
	tree.Stats.Nodes = len(tree.Nodes)
	tree.Stats.MaxDepth = tree.Depth() - 1
	tree.Stats.BuildTime = time.Since(start)

	logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, merges: %d",
		tree.Stats.BuildTime.Nanoseconds()/1e6,
		tree.Stats.MaxDepth, tree.Stats.Nodes, tree.Stats.Merges,
	)
	return tree
}

// MergeCost scores merging a and b. The score adds the distance between the
// box centers, the volume of the merged box and the relative growth of the
// merged box over the summed volumes of both boxes. Only the AABB volumes
// take part; the spheres are merged but never scored.
func MergeCost(a, b *Node) float32 {
	merged := bounds.MergeAABB(a.AABB, b.AABB)
	mergedVolume := merged.Volume()

	sumVolume := a.AABB.Volume() + b.AABB.Volume()
	var relativeIncrease float32
	if sumVolume > 0 {
		relativeIncrease = (mergedVolume - sumVolume) / sumVolume
	}

	return a.AABB.Center().Distance(b.AABB.Center()) + mergedVolume + relativeIncrease
}
