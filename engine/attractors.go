package engine

import "github.com/lixenwraith/gravwell/core"

// AttractorSet is the fixed, ordered collection of attractors
// Iteration order is the capture tie-break order
type AttractorSet struct {
	items []core.Attractor
}

// NewAttractorSet creates a set from attractors in the given order
func NewAttractorSet(attractors ...core.Attractor) *AttractorSet {
	s := &AttractorSet{}
	s.items = append(s.items, attractors...)
	return s
}

// Add appends an attractor after all existing ones
func (s *AttractorSet) Add(a core.Attractor) {
	s.items = append(s.items, a)
}

// All returns the attractors in iteration order; callers must not modify them
func (s *AttractorSet) All() []core.Attractor {
	return s.items
}

// Len returns the number of attractors
func (s *AttractorSet) Len() int {
	return len(s.items)
}

// NextTag returns the smallest tag above every tag in use, TagNone once the highest tag is taken
func (s *AttractorSet) NextTag() core.Tag {
	var max core.Tag
	for _, a := range s.items {
		if a.Tag > max {
			max = a.Tag
		}
	}
	return max + 1
}

// Has reports whether an attractor already carries tag
func (s *AttractorSet) Has(tag core.Tag) bool {
	for _, a := range s.items {
		if a.Tag == tag {
			return true
		}
	}
	return false
}

// Clear removes all attractors
func (s *AttractorSet) Clear() {
	s.items = s.items[:0]
}
