package renderer

import "time"

type FrameStats struct {
	// The rendered tree level or bvh.AllLevels.
	Level int

	// Number of hierarchy nodes that were drawn.
	Volumes int

	// Primitive counts by kind.
	Lines     int
	Triangles int
	Spheres   int

	// Total render time for entire frame.
	RenderTime time.Duration
}
