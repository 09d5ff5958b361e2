package engine

import "github.com/lixenwraith/gravwell/core"

// ParticleStore owns all mobile particles in one contiguous slice
// Order is not significant; the scheduler iterates and partitions it in bulk
// No lock: the frame loop never reads and steps concurrently
type ParticleStore struct {
	items []core.Particle
}

// NewParticleStore creates a store with room for capacity particles
func NewParticleStore(capacity int) *ParticleStore {
	return &ParticleStore{items: make([]core.Particle, 0, capacity)}
}

// Add appends a mobile particle
func (s *ParticleStore) Add(p core.Particle) {
	s.items = append(s.items, p)
}

// AddAll appends a batch of mobile particles
func (s *ParticleStore) AddAll(ps []core.Particle) {
	s.items = append(s.items, ps...)
}

// Items returns the backing slice; valid until the next mutation
func (s *ParticleStore) Items() []core.Particle {
	return s.items
}

// Len returns the number of mobile particles
func (s *ParticleStore) Len() int {
	return len(s.items)
}

// replace installs ps as the store contents, taking ownership of its backing array
func (s *ParticleStore) replace(ps []core.Particle) {
	s.items = ps
}

// Clear drops all particles, keeping capacity
func (s *ParticleStore) Clear() {
	s.items = s.items[:0]
}
