package touchat

// EntrySet is a set of absolute paths which remembers the order of insertion.
// The zero value is not usable, use NewEntrySet.
type EntrySet struct {
	index map[string]struct{}
	order []string
}

func NewEntrySet() *EntrySet {
	return &EntrySet{index: make(map[string]struct{})}
}

// Add inserts the path unless it is already present and reports whether it was new.
func (s *EntrySet) Add(path string) (added bool) {
	if _, present := s.index[path]; present {
		return false
	}
	s.index[path] = struct{}{}
	s.order = append(s.order, path)
	return true
}

func (s *EntrySet) Contains(path string) bool {
	_, present := s.index[path]
	return present
}

func (s *EntrySet) Len() int {
	return len(s.order)
}

// Paths returns a copy of all entries in insertion order.
func (s *EntrySet) Paths() []string {
	return append([]string(nil), s.order...)
}
