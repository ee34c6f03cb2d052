// Package reader loads mesh files into objects that the hierarchy builders
// can partition.
package reader

import (
	"fmt"
	"strings"

	"github.com/boundlab/boundlab/asset"
	"github.com/boundlab/boundlab/bvh"
)

// The Reader interface is implemented by all object readers.
type Reader interface {
	// Read object definitions from a resource.
	Read(*asset.Resource) ([]*bvh.Object, error)
}

// Read objects from a file or URL.
func ReadObjects(filename string) ([]*bvh.Object, error) {
	res, err := asset.Open(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	if strings.HasSuffix(strings.ToLower(filename), ".obj") {
		reader = NewWavefrontReader()
	} else {
		return nil, fmt.Errorf("readObjects: unsupported file format")
	}
	return reader.Read(res)
}
