package bvh

import "testing"

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("expected default options to be valid; got %v", err)
	}

	specs := []struct {
		mutate func(*Options)
		exp    error
	}{
		{func(o *Options) { o.MinLeafSize = 0 }, ErrInvalidMinLeafSize},
		{func(o *Options) { o.MaxDepth = -1 }, ErrInvalidMaxDepth},
		{func(o *Options) { o.Method = Method(9) }, ErrUnknownMethod},
		{func(o *Options) { o.Split = SplitPolicy(9) }, ErrUnknownSplitPolicy},
	}

	for index, spec := range specs {
		opts := DefaultOptions()
		spec.mutate(&opts)
		if err := opts.Validate(); err != spec.exp {
			t.Fatalf("[spec %d] expected error %v; got %v", index, spec.exp, err)
		}
	}
}

func TestParseEnums(t *testing.T) {
	for _, policy := range []SplitPolicy{MedianOfCenters, MedianOfExtents, KEvenSplit} {
		got, err := ParseSplitPolicy(policy.String())
		if err != nil || got != policy {
			t.Fatalf("expected to parse %q back to %d; got %d (%v)", policy, policy, got, err)
		}
	}
	for _, method := range []Method{TopDown, BottomUp} {
		got, err := ParseMethod(method.String())
		if err != nil || got != method {
			t.Fatalf("expected to parse %q back to %d; got %d (%v)", method, method, got, err)
		}
	}
	for _, kind := range VolumeKinds {
		got, err := ParseVolumeKind(kind.String())
		if err != nil || got != kind {
			t.Fatalf("expected to parse %q back to %d; got %d (%v)", kind, kind, got, err)
		}
	}

	if _, err := ParseSplitPolicy("random"); err != ErrUnknownSplitPolicy {
		t.Fatalf("expected error %v; got %v", ErrUnknownSplitPolicy, err)
	}
	if _, err := ParseMethod("sideways"); err != ErrUnknownMethod {
		t.Fatalf("expected error %v; got %v", ErrUnknownMethod, err)
	}
	if _, err := ParseVolumeKind("obb"); err != ErrUnknownVolumeKind {
		t.Fatalf("expected error %v; got %v", ErrUnknownVolumeKind, err)
	}
}
