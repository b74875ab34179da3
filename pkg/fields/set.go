package fields

// Set is a name-keyed descriptor collection that preserves insertion
// order. Add refuses to overwrite an existing name, which is how override
// precedence is enforced: whoever inserts first wins.
//
// A Set is populated during form construction and read-only afterwards.
// It is not safe for concurrent mutation.
type Set struct {
	names   []string
	entries map[string]Descriptor
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{entries: make(map[string]Descriptor)}
}

// Add inserts the descriptor under its name. It reports false, leaving
// the existing descriptor untouched, when the name is already present or
// the descriptor has no name.
func (s *Set) Add(d Descriptor) bool {
	if d.Name == "" {
		return false
	}
	if _, exists := s.entries[d.Name]; exists {
		return false
	}
	s.names = append(s.names, d.Name)
	s.entries[d.Name] = d
	return true
}

// Has reports whether a descriptor exists under name.
func (s *Set) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Get returns the descriptor registered under name.
func (s *Set) Get(name string) (Descriptor, bool) {
	d, ok := s.entries[name]
	return d, ok
}

// Names returns the field names in insertion order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Descriptors returns the descriptors in insertion order.
func (s *Set) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.entries[name])
	}
	return out
}

// Len returns the number of descriptors.
func (s *Set) Len() int {
	return len(s.names)
}

// Clone returns an independent copy preserving order.
func (s *Set) Clone() *Set {
	out := NewSet()
	if s == nil {
		return out
	}
	for _, name := range s.names {
		out.Add(s.entries[name])
	}
	return out
}
