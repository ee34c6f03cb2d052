package bvh

// Build constructs a hierarchy over objects with the method selected in
// opts. The options are validated first.
func Build(objects []*Object, opts Options) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Method == BottomUp {
		return BuildBottomUp(objects), nil
	}
	return BuildTopDown(objects, opts), nil
}
