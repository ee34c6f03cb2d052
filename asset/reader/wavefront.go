package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boundlab/boundlab/asset"
	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/log"
	"github.com/boundlab/boundlab/types"
)

// A named group of faces. Only the vertices referenced by its faces end up
// in the generated object.
type wavefrontGroup struct {
	Name string

	// Indices into the reader vertex list in first-reference order.
	VertexIndices []int
	seen          map[int]struct{}

	Faces int
}

func newWavefrontGroup(name string) *wavefrontGroup {
	return &wavefrontGroup{
		Name: name,
		seen: make(map[int]struct{}),
	}
}

func (g *wavefrontGroup) addVertex(index int) {
	if _, exists := g.seen[index]; exists {
		return
	}
	g.seen[index] = struct{}{}
	g.VertexIndices = append(g.VertexIndices, index)
}

// A placed copy of a group.
type wavefrontInstance struct {
	Group       *wavefrontGroup
	Translation types.Vec3
	Rotation    types.Quat
	Scale       types.Vec3
}

// Apply scale, rotation and translation to v in that order.
func (inst *wavefrontInstance) transform(v types.Vec3) types.Vec3 {
	return inst.Rotation.Rotate(v.MulVec(inst.Scale)).Add(inst.Translation)
}

type wavefrontReader struct {
	logger log.Logger

	// Vertex positions from all parsed files.
	vertexList []types.Vec3

	// Texture and normal coordinate counts; only needed for validating
	// face indices.
	uvCount     int
	normalCount int

	groups    []*wavefrontGroup
	instances []*wavefrontInstance

	// An error stack that provides additional error information when
	// object files include other files.
	errStack []string
}

// Create a new wavefront object reader. Each "o" or "g" group becomes one
// object. If the file defines "instance" entries, one object is generated
// per instance instead.
func NewWavefrontReader() Reader {
	return newWavefrontReader()
}

func newWavefrontReader() *wavefrontReader {
	return &wavefrontReader{
		logger:     log.New("wavefront object reader"),
		vertexList: make([]types.Vec3, 0),
		errStack:   make([]string, 0),
	}
}

// Read object definitions.
func (r *wavefrontReader) Read(res *asset.Resource) ([]*bvh.Object, error) {
	r.logger.Noticef(`parsing objects from "%s"`, res.Path())
	start := time.Now()

	err := r.parse(res)
	if err != nil {
		return nil, err
	}

	objects := r.buildObjects()
	r.logger.Noticef("parsed %d objects in %d ms", len(objects), time.Since(start).Nanoseconds()/1e6)
	return objects, nil
}

// Convert parsed groups or instances into objects.
func (r *wavefrontReader) buildObjects() []*bvh.Object {
	if len(r.instances) == 0 {
		objects := make([]*bvh.Object, 0, len(r.groups))
		for _, g := range r.groups {
			vertices := make([]types.Vec3, len(g.VertexIndices))
			for i, index := range g.VertexIndices {
				vertices[i] = r.vertexList[index]
			}
			objects = append(objects, bvh.NewObject(g.Name, vertices))
		}
		return objects
	}

	objects := make([]*bvh.Object, 0, len(r.instances))
	instanceCount := make(map[string]int)
	for _, inst := range r.instances {
		vertices := make([]types.Vec3, len(inst.Group.VertexIndices))
		for i, index := range inst.Group.VertexIndices {
			vertices[i] = inst.transform(r.vertexList[index])
		}
		name := fmt.Sprintf("%s#%d", inst.Group.Name, instanceCount[inst.Group.Name])
		instanceCount[inst.Group.Name]++
		objects = append(objects, bvh.NewObject(name, vertices))
	}
	return objects
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n"))
	}
	return fmt.Errorf("%s", strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *wavefrontReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse wavefront object format.
func (r *wavefrontReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	// Included files use 1-based indices relative to their own vertex
	// list so track where this file's vertices start.
	relVertexOffset := len(r.vertexList)
	relUvOffset := r.uvCount
	relNormalOffset := r.normalCount

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))
			incRes, err := asset.Open(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			r.normalCount++
		case "vt":
			r.uvCount++
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			r.verifyLastParsedGroup()
			r.groups = append(r.groups, newWavefrontGroup(lineTokens[1]))
		case "f":
			// If no group has been defined create a default one
			if len(r.groups) == 0 {
				r.groups = append(r.groups, newWavefrontGroup("default"))
			}

			err := r.parseFace(lineTokens, r.groups[len(r.groups)-1], relVertexOffset, relUvOffset, relNormalOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "instance":
			instance, err := r.parseInstance(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.instances = append(r.instances, instance)
		case "mtllib", "usemtl", "s":
			// Surface attributes do not affect bounding volumes.
		default:
			r.logger.Debugf("[%s: %d] ignoring unsupported keyword %q", res.Path(), lineNum, lineTokens[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	// Included files may leave the including file's group open so it can
	// still receive faces after the call returns.
	if len(r.errStack) == 0 {
		r.verifyLastParsedGroup()
	}
	return nil
}

// Drop the last parsed group if it contains no faces.
func (r *wavefrontReader) verifyLastParsedGroup() {
	lastIndex := len(r.groups) - 1
	if lastIndex >= 0 && r.groups[lastIndex].Faces == 0 {
		r.logger.Warningf(`dropping object "%s" as it contains no polygons`, r.groups[lastIndex].Name)
		r.groups = r.groups[:lastIndex]
	}
}

// Parse instance definition. Definitions use the following format:
// instance object_name tX tY tZ yaw pitch roll sX sY sZ
// where:
// - tX, tY, tZ       : translation vector
// - yaw, pitch, roll : rotation angles in degrees
// - sX, sY, sZ       : scale
func (r *wavefrontReader) parseInstance(lineTokens []string) (*wavefrontInstance, error) {
	if len(lineTokens) != 11 {
		return nil, fmt.Errorf(`unsupported syntax for "instance"; expected 10 arguments: object_name tX tY tZ yaw pitch roll sX sY sZ; got %d`, len(lineTokens)-1)
	}

	// Find group by name
	var group *wavefrontGroup
	for _, g := range r.groups {
		if g.Name == lineTokens[1] {
			group = g
			break
		}
	}
	if group == nil || group.Faces == 0 {
		return nil, fmt.Errorf(`unknown object with name "%s"`, lineTokens[1])
	}

	var args [9]float32
	for index := range args {
		v, err := strconv.ParseFloat(lineTokens[index+2], 32)
		if err != nil {
			return nil, err
		}
		args[index] = float32(v)
	}

	return &wavefrontInstance{
		Group:       group,
		Translation: types.XYZ(args[0], args[1], args[2]),
		Rotation:    types.QuatFromYawPitchRoll(args[3], args[4], args[5]),
		Scale:       types.XYZ(args[6], args[7], args[8]),
	}, nil
}

// Parse face definition. Each face definition consists of 3 or 4 arguments,
// one for each vertex. Each one of the vertex arguments is comprised of
// 1, 2 or 3 args separated by a slash character. The following formats are
// supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Indices start from 1 and may be negative to indicate
// an offset off the end of the coordinate list.
func (r *wavefrontReader) parseFace(lineTokens []string, group *wavefrontGroup, relVertexOffset, relUvOffset, relNormalOffset int) error {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	// The first arg defines the format for the following args
	argTokens := make([][]string, len(lineTokens)-1)
	for arg := range argTokens {
		argTokens[arg] = strings.Split(lineTokens[arg+1], "/")
		if len(argTokens[arg]) != len(argTokens[0]) {
			return fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", len(argTokens[0]), arg, len(argTokens[arg]))
		}

		// Faces must at least define a vertex coord
		if argTokens[arg][0] == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}
	}

	var faceIndices [4]int
	for arg, vTokens := range argTokens {
		vOffset, err := selectFaceCoordIndex(vTokens[0], len(r.vertexList), relVertexOffset)
		if err != nil {
			return fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		faceIndices[arg] = vOffset

		if len(vTokens) > 1 && vTokens[1] != "" {
			if _, err = selectFaceCoordIndex(vTokens[1], r.uvCount, relUvOffset); err != nil {
				return fmt.Errorf("could not parse tex coord for face argument %d: %s", arg, err.Error())
			}
		}

		if len(vTokens) > 2 && vTokens[2] != "" {
			if _, err = selectFaceCoordIndex(vTokens[2], r.normalCount, relNormalOffset); err != nil {
				return fmt.Errorf("could not parse normal coord for face argument %d: %s", arg, err.Error())
			}
		}
	}

	// Only register the vertices once the whole face is known to be valid.
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		group.addVertex(faceIndices[arg])
	}
	group.Faces++
	return nil
}

// Given an index for a face coord type (vertex, normal, tex) calculate the
// proper offset into the coord list. Wavefront format can also use negative
// indices to reference elements from the end of the coord list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index == 0 {
		return -1, fmt.Errorf("index out of bounds")
	} else if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}

	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}

	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}

	return v, nil
}
