package bvh

import "strings"

// Method selects the hierarchy construction strategy.
type Method uint8

const (
	TopDown Method = iota
	BottomUp
)

func (m Method) String() string {
	switch m {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	}
	return "unknown"
}

// Parse a build method name.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "top-down", "topdown":
		return TopDown, nil
	case "bottom-up", "bottomup":
		return BottomUp, nil
	}
	return TopDown, ErrUnknownMethod
}

// SplitPolicy selects how the top-down builder orders and splits an object
// subset along the split axis.
type SplitPolicy uint8

const (
	// Order by bounding box center and split at the midpoint index.
	MedianOfCenters SplitPolicy = iota

	// Order by bounding box max corner and split at the midpoint index.
	MedianOfExtents

	// Order by bounding box min corner and split at KEvenSplitFraction of
	// the count.
	KEvenSplit
)

// The fraction of objects that KEvenSplit places in the left subset.
const KEvenSplitFraction float32 = 0.7

func (p SplitPolicy) String() string {
	switch p {
	case MedianOfCenters:
		return "median-centers"
	case MedianOfExtents:
		return "median-extents"
	case KEvenSplit:
		return "k-even"
	}
	return "unknown"
}

// Parse a split policy name.
func ParseSplitPolicy(name string) (SplitPolicy, error) {
	switch strings.ToLower(name) {
	case "median-centers", "centers":
		return MedianOfCenters, nil
	case "median-extents", "extents":
		return MedianOfExtents, nil
	case "k-even", "keven", "k-even-split":
		return KEvenSplit, nil
	}
	return MedianOfCenters, ErrUnknownSplitPolicy
}

const (
	// Default leaf size for the top-down builder.
	DefaultMinLeafSize = 1

	// Default depth cap used when height limiting is enabled.
	DefaultMaxDepth = 7
)

// Options control hierarchy construction.
type Options struct {
	Method Method

	// Top-down only.
	Split SplitPolicy

	// Subsets with at most this many objects become leaves.
	MinLeafSize int

	// If set, nodes at depth >= MaxDepth become leaves.
	HeightLimited bool
	MaxDepth      int
}

// Get the default build options.
func DefaultOptions() Options {
	return Options{
		Method:      TopDown,
		Split:       MedianOfCenters,
		MinLeafSize: DefaultMinLeafSize,
		MaxDepth:    DefaultMaxDepth,
	}
}

// Validate the option values.
func (o Options) Validate() error {
	if o.MinLeafSize < 1 {
		return ErrInvalidMinLeafSize
	}
	if o.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if o.Method > BottomUp {
		return ErrUnknownMethod
	}
	if o.Split > KEvenSplit {
		return ErrUnknownSplitPolicy
	}
	return nil
}
