package renderer

import "github.com/boundlab/boundlab/bvh"

type Options struct {
	// The bounding volume to draw for each node.
	Kind bvh.VolumeKind

	// Tree level to draw; bvh.AllLevels draws every node.
	Level int
}

// Get the default render options: AABBs for all levels.
func DefaultOptions() Options {
	return Options{
		Kind:  bvh.AABBVolume,
		Level: bvh.AllLevels,
	}
}
