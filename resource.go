package glpipe

// Releaser is a GPU resource with explicit teardown. Release must be safe to
// call more than once; only the first call frees the native handle.
type Releaser interface {
	Release()
}

// ResourceSet owns a group of resources created during setup and releases
// them in reverse creation order.
//
//	var rs glpipe.ResourceSet
//	defer rs.Release()
//	vs, err := glpipe.CompileStage(ctx, glpipe.StageVertex, src)
//	if err != nil {
//	    return err // everything added so far is released
//	}
//	rs.Add(vs)
type ResourceSet struct {
	items []Releaser
}

// Add registers resources in creation order.
func (s *ResourceSet) Add(rs ...Releaser) {
	for _, r := range rs {
		if r != nil {
			s.items = append(s.items, r)
		}
	}
}

// Len returns the number of resources still owned.
func (s *ResourceSet) Len() int { return len(s.items) }

// Release releases every resource, last added first, and empties the set.
func (s *ResourceSet) Release() {
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Release()
	}
	s.items = nil
}

// Detach hands ownership of all resources to the returned set and leaves s
// empty, so a deferred s.Release becomes a no-op once setup succeeds.
func (s *ResourceSet) Detach() *ResourceSet {
	out := &ResourceSet{items: s.items}
	s.items = nil
	return out
}
