package scene

import (
	"testing"

	"github.com/boundlab/boundlab/bvh"
	"github.com/boundlab/boundlab/types"
)

func TestRebuildReplacesTree(t *testing.T) {
	s := NewScene(BoxGrid(2, 2, 2, 3, 1))
	if err := s.Rebuild(); err != nil {
		t.Fatal(err)
	}

	first := s.Tree
	if first == nil || first.Stats.Method != bvh.TopDown {
		t.Fatal("expected a top-down tree after the first rebuild")
	}
	if got := len(first.Objects()); got != 8 {
		t.Fatalf("expected tree to hold 8 objects; got %d", got)
	}

	opts := bvh.DefaultOptions()
	opts.Method = bvh.BottomUp
	if err := s.SetOptions(opts); err != nil {
		t.Fatal(err)
	}
	if err := s.Rebuild(); err != nil {
		t.Fatal(err)
	}

	if s.Tree == first {
		t.Fatal("expected rebuild to replace the tree")
	}
	if s.Tree.Stats.Method != bvh.BottomUp {
		t.Fatalf("expected bottom-up tree; got %s", s.Tree.Stats.Method)
	}
	if s.Rebuilds != 2 {
		t.Fatalf("expected 2 rebuilds; got %d", s.Rebuilds)
	}
}

func TestSetInvalidOptions(t *testing.T) {
	s := NewScene(nil)

	opts := bvh.DefaultOptions()
	opts.MinLeafSize = 0
	if err := s.SetOptions(opts); err != bvh.ErrInvalidMinLeafSize {
		t.Fatalf("expected error %v; got %v", bvh.ErrInvalidMinLeafSize, err)
	}

	if s.Options != bvh.DefaultOptions() {
		t.Fatal("expected invalid options to be rejected")
	}
}

func TestRebuildWithoutObjects(t *testing.T) {
	s := NewScene(nil)
	if err := s.Rebuild(); err != ErrNoObjects {
		t.Fatalf("expected error %v; got %v", ErrNoObjects, err)
	}

	s.AddObjects(BoxGrid(1, 1, 1, 1, 1)...)
	if err := s.Rebuild(); err != nil {
		t.Fatal(err)
	}
	if s.Tree.Depth() != 1 {
		t.Fatalf("expected a single leaf tree; got depth %d", s.Tree.Depth())
	}
}

func TestBoxGrid(t *testing.T) {
	objects := BoxGrid(2, 1, 3, 4, 2)
	if len(objects) != 6 {
		t.Fatalf("expected 6 boxes; got %d", len(objects))
	}

	last := objects[len(objects)-1]
	if last.Name != "box_1_0_2" {
		t.Fatalf("expected last box to be box_1_0_2; got %s", last.Name)
	}

	expMin, expMax := types.XYZ(3, -1, 7), types.XYZ(5, 1, 9)
	if last.AABB.Min != expMin || last.AABB.Max != expMax {
		t.Fatalf("expected AABB [%v, %v]; got [%v, %v]", expMin, expMax, last.AABB.Min, last.AABB.Max)
	}
}

func TestBoxVerticesRotation(t *testing.T) {
	center := types.XYZ(10, 0, 0)
	verts := BoxVertices(center, types.XYZ(2, 1, 1), types.QuatFromYawPitchRoll(90, 0, 0))

	// A quarter turn around Y swaps the X and Z extents.
	objMin, objMax := types.XYZ(9, -1, -2), types.XYZ(11, 1, 2)
	for _, v := range verts {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < objMin[axis]-1e-4 || v[axis] > objMax[axis]+1e-4 {
				t.Fatalf("expected rotated vertex %v to lie in [%v, %v]", v, objMin, objMax)
			}
		}
	}
}

func TestSphereVertices(t *testing.T) {
	center := types.XYZ(1, 2, 3)
	verts := SphereVertices(center, 2, 8, 4)

	if len(verts) != 45 {
		t.Fatalf("expected 45 vertices; got %d", len(verts))
	}

	for idx, v := range verts {
		if d := v.Distance(center); d < 2-1e-4 || d > 2+1e-4 {
			t.Fatalf("expected vertex %d to lie on the sphere; distance %f", idx, d)
		}
	}

	if !verts[0].ApproxEqual(types.XYZ(1, 2, 5), 1e-4) {
		t.Fatalf("expected first vertex at the +Z pole; got %v", verts[0])
	}
}

func TestDemo(t *testing.T) {
	for _, kind := range []DemoKind{GridDemo, RotatedDemo, SphereDemo, MixedDemo} {
		objects, err := Demo(kind, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(objects) != 10 {
			t.Fatalf("[%s] expected 10 objects; got %d", kind, len(objects))
		}

		again, _ := Demo(kind, 10)
		for i := range objects {
			if objects[i].AABB != again[i].AABB {
				t.Fatalf("[%s] expected demo output to be deterministic", kind)
			}
		}

		parsed, err := ParseDemoKind(kind.String())
		if err != nil || parsed != kind {
			t.Fatalf("expected to parse %s back; got %v (%v)", kind, parsed, err)
		}
	}

	if _, err := Demo(GridDemo, 0); err != ErrNoObjects {
		t.Fatalf("expected error %v; got %v", ErrNoObjects, err)
	}
	if _, err := ParseDemoKind("torus"); err == nil {
		t.Fatal("expected unknown demo kind error")
	}
}
