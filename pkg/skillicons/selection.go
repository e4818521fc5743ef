package skillicons

import "github.com/pkg/errors"

// ErrIndexOutOfRange is returned by MoveTo when an index does not address an
// element of the selection.
var ErrIndexOutOfRange = errors.New("selection index out of range")

// Selection is the user's ordered, duplicate-free list of chosen icons.
// Insertion order is output order. A Selection is not safe for concurrent use.
type Selection struct {
	items []IconID
}

// NewSelection returns a selection holding ids in order, skipping repeats.
func NewSelection(ids ...IconID) *Selection {
	s := &Selection{}
	for _, id := range ids {
		if !s.Contains(id) {
			s.items = append(s.items, id)
		}
	}
	return s
}

// Toggle removes id if it is selected, otherwise appends it. It reports
// whether id is selected afterwards. Ids are not checked against the catalog.
func (s *Selection) Toggle(id IconID) bool {
	if i := s.Index(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return false
	}
	s.items = append(s.items, id)
	return true
}

// MoveTo removes the element at from and reinserts it at to, where to indexes
// the list after the removal. Both indices must be in [0, Len()); otherwise
// ErrIndexOutOfRange is returned and the selection is left untouched.
func (s *Selection) MoveTo(from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return errors.Wrapf(ErrIndexOutOfRange, "move %d -> %d with %d selected", from, to, n)
	}
	if from == to {
		return nil
	}

	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	s.items = append(s.items, "")
	copy(s.items[to+1:], s.items[to:])
	s.items[to] = item
	return nil
}

// Items returns a copy of the selected ids in order.
func (s *Selection) Items() []IconID {
	out := make([]IconID, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected icons.
func (s *Selection) Len() int {
	return len(s.items)
}

// At returns the id at position i.
func (s *Selection) At(i int) (IconID, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id IconID) bool {
	return s.Index(id) >= 0
}

// Index returns the position of id, or -1.
func (s *Selection) Index(id IconID) int {
	for i, item := range s.items {
		if item == id {
			return i
		}
	}
	return -1
}

// Clear drops every selected icon.
func (s *Selection) Clear() {
	s.items = nil
}
