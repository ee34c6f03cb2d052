package renderer

import "errors"

var (
	ErrNoTree          = errors.New("renderer: no hierarchy defined")
	ErrNoSink          = errors.New("renderer: no sink attached")
	ErrLevelOutOfRange = errors.New("renderer: level out of range")
)
