// Package renderer turns bounding volume hierarchies into lists of
// drawable primitives and hands them to a Sink.
package renderer

type Renderer interface {
	// Render frame.
	Render() error

	// Get render statistics.
	Stats() FrameStats
}
