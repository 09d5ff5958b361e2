package engine

import "github.com/lixenwraith/gravwell/core"

// TraceArchive holds pinned particles; append-only while simulating
type TraceArchive struct {
	items []core.Particle
}

// NewTraceArchive creates an empty archive
func NewTraceArchive() *TraceArchive {
	return &TraceArchive{}
}

// Append copies pinned particles into the archive
func (a *TraceArchive) Append(ps ...core.Particle) {
	a.items = append(a.items, ps...)
}

// Items returns archived particles in capture order; valid until the next mutation
func (a *TraceArchive) Items() []core.Particle {
	return a.items
}

// Len returns the number of archived particles
func (a *TraceArchive) Len() int {
	return len(a.items)
}

// CountByTag returns how many traces each attractor tag captured
func (a *TraceArchive) CountByTag() map[core.Tag]int {
	counts := make(map[core.Tag]int)
	for i := range a.items {
		counts[a.items[i].Tag]++
	}
	return counts
}

// Drain hands the archived particles to the caller and empties the archive
// The returned slice is owned by the caller
func (a *TraceArchive) Drain() []core.Particle {
	out := a.items
	a.items = nil
	return out
}

// Clear drops all traces
func (a *TraceArchive) Clear() {
	a.items = a.items[:0]
}
