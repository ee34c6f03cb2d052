package bvh

import "errors"

var (
	ErrInvalidMinLeafSize = errors.New("bvh: min leaf size must be at least 1")
	ErrInvalidMaxDepth    = errors.New("bvh: max depth must not be negative")
	ErrUnknownMethod      = errors.New("bvh: unknown build method")
	ErrUnknownSplitPolicy = errors.New("bvh: unknown split policy")
	ErrUnknownVolumeKind  = errors.New("bvh: unknown volume kind")
)
