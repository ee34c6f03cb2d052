package renderer

import (
	"time"

	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/log"
)

// HierarchyRenderer draws the bounding volumes of a tree, one level at a
// time or all levels at once.
type HierarchyRenderer struct {
	logger log.Logger

	tree    *bvh.Tree
	sink    Sink
	options Options

	stats FrameStats
}

// Create a renderer for tree that draws into sink.
func NewHierarchyRenderer(tree *bvh.Tree, sink Sink, opts Options) *HierarchyRenderer {
	return &HierarchyRenderer{
		logger:  log.New("hierarchy renderer"),
		tree:    tree,
		sink:    sink,
		options: opts,
	}
}

// Replace the rendered tree, e.g. after a scene rebuild.
func (r *HierarchyRenderer) SetTree(tree *bvh.Tree) {
	r.tree = tree
}

// Select the level to draw.
func (r *HierarchyRenderer) SetLevel(level int) {
	r.options.Level = level
}

// Select the bounding volume kind to draw.
func (r *HierarchyRenderer) SetKind(kind bvh.VolumeKind) {
	r.options.Kind = kind
}

// Render the selected level of the tree.
func (r *HierarchyRenderer) Render() error {
	if r.tree == nil {
		return ErrNoTree
	}
	if r.sink == nil {
		return ErrNoSink
	}

	level := r.options.Level
	if level < bvh.AllLevels || level >= r.tree.Depth() {
		r.logger.Errorf("level %d outside [0, %d)", level, r.tree.Depth())
		return ErrLevelOutOfRange
	}

	start := time.Now()
	volumes, err := r.tree.Volumes(level, r.options.Kind)
	if err != nil {
		return err
	}

	primitives := Primitives(volumes)
	if err = r.sink.Draw(primitives); err != nil {
		return err
	}

	r.stats = FrameStats{
		Level:      level,
		Volumes:    len(volumes),
		RenderTime: time.Since(start),
	}
	for _, prim := range primitives {
		switch prim.Kind {
		case LinePrimitive:
			r.stats.Lines++
		case TrianglePrimitive:
			r.stats.Triangles++
		case SpherePrimitive:
			r.stats.Spheres++
		}
	}
	r.logger.Debugf("rendered %d volumes as %d primitives in %s", len(volumes), len(primitives), r.stats.RenderTime)
	return nil
}

// Get the stats of the last rendered frame.
func (r *HierarchyRenderer) Stats() FrameStats {
	return r.stats
}
