// Package scene holds the objects of a scene together with the hierarchy
// built over them.
package scene

import (
	"errors"

	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/log"
)

var (
	ErrNoObjects = errors.New("scene: no objects defined")
)

// Scene owns a set of objects, the options used for building a hierarchy
// over them and the most recently built hierarchy.
type Scene struct {
	logger log.Logger

	Objects []*bvh.Object
	Options bvh.Options

	// The current hierarchy; nil until the first Rebuild.
	Tree *bvh.Tree

	// Number of completed rebuilds.
	Rebuilds int
}

// Create a scene for objects using the default build options.
func NewScene(objects []*bvh.Object) *Scene {
	return &Scene{
		logger:  log.New("scene"),
		Objects: objects,
		Options: bvh.DefaultOptions(),
	}
}

// Add objects to the scene. The current tree is kept until the next Rebuild.
func (s *Scene) AddObjects(objects ...*bvh.Object) {
	s.Objects = append(s.Objects, objects...)
}

// Replace the build options. Invalid options are rejected and the current
// options are kept.
func (s *Scene) SetOptions(opts bvh.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	s.Options = opts
	return nil
}

// Build a fresh hierarchy with the current options and replace the
// previous one.
func (s *Scene) Rebuild() error {
	if len(s.Objects) == 0 {
		return ErrNoObjects
	}

	tree, err := bvh.Build(s.Objects, s.Options)
	if err != nil {
		return err
	}

	s.Tree = tree
	s.Rebuilds++
	s.logger.Infof(
		"rebuilt %s hierarchy for %d objects (nodes: %d, depth: %d)",
		tree.Stats.Method, len(s.Objects), len(tree.Nodes), tree.Depth(),
	)
	return nil
}
