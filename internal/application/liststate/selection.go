package liststate

// Selection tracks which rows of a list are checked
type Selection[K comparable] struct {
	selected map[K]struct{}
}

// NewSelection creates an empty selection
func NewSelection[K comparable]() *Selection[K] {
	return &Selection[K]{selected: make(map[K]struct{})}
}

// ToggleRow flips the membership of id
func (s *Selection[K]) ToggleRow(id K) {
	next := s.clone()
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	s.selected = next
}

// SelectAll replaces the selection with exactly ids
func (s *Selection[K]) SelectAll(ids ...K) {
	next := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	s.selected = next
}

// ClearSelection empties the selection
func (s *Selection[K]) ClearSelection() {
	s.selected = make(map[K]struct{})
}

// IsSelected reports whether id is selected
func (s *Selection[K]) IsSelected(id K) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedCount returns the number of selected rows
func (s *Selection[K]) SelectedCount() int {
	return len(s.selected)
}

// Selected returns the selected ids in no particular order
func (s *Selection[K]) Selected() []K {
	ids := make([]K, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return ids
}

// SelectedIn returns the selected ids among ids, in the order of ids.
// Views use it to get a stable order for bulk actions.
func (s *Selection[K]) SelectedIn(ids []K) []K {
	var out []K
	for _, id := range ids {
		if s.IsSelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// clone copies the set so previously returned state is never mutated
func (s *Selection[K]) clone() map[K]struct{} {
	next := make(map[K]struct{}, len(s.selected)+1)
	for id := range s.selected {
		next[id] = struct{}{}
	}
	return next
}
