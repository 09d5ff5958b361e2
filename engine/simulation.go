package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/status"
	"gonum.org/v1/gonum/spatial/r2"
)

// StepStats reports one Step call
type StepStats struct {
	// Captured is the number of particles pinned during the call
	Captured int
	// SubSteps is the number of sub-steps requested
	SubSteps int
	// Mobile is the particle store size after the call
	Mobile int
	// Elapsed is the wall time spent in the scheduler
	Elapsed time.Duration
}

// Snapshot is a read-only view of the simulation for rendering
// Slices alias engine storage and are valid until the next Step, Spawn, Seed, release or Reset
type Snapshot struct {
	Mobile     []core.Particle
	Attractors []core.Attractor
	Pinned     []core.Particle
}

// Simulation is the explicit context owned by the frame loop
// Methods must be called from a single goroutine; the scheduler fans out internally
type Simulation struct {
	attractors *AttractorSet
	particles  *ParticleStore
	archive    *TraceArchive
	scheduler  *Scheduler

	stats *status.Registry

	// Cached metric pointers
	statMobile        *atomic.Int64
	statPinned        *atomic.Int64
	statAttractors    *atomic.Int64
	statCapturedFrame *atomic.Int64
	statCapturedTotal *atomic.Int64
	statReleasedTotal *atomic.Int64
	statSteps         *atomic.Int64
	statSubSteps      *atomic.Int64
	statStepMs        *status.AtomicFloat
	statSimTime       *status.AtomicFloat
}

// NewSimulation creates an empty simulation
// workers <= 0 uses runtime.NumCPU(); a nil registry gets a private one
func NewSimulation(workers int, stats *status.Registry) *Simulation {
	if stats == nil {
		stats = status.NewRegistry()
	}

	s := &Simulation{
		attractors: NewAttractorSet(),
		particles:  NewParticleStore(0),
		archive:    NewTraceArchive(),
		scheduler:  NewScheduler(workers),
		stats:      stats,

		statMobile:        stats.Ints.Get(status.KeyMobile),
		statPinned:        stats.Ints.Get(status.KeyPinned),
		statAttractors:    stats.Ints.Get(status.KeyAttractors),
		statCapturedFrame: stats.Ints.Get(status.KeyCapturedFrame),
		statCapturedTotal: stats.Ints.Get(status.KeyCapturedTotal),
		statReleasedTotal: stats.Ints.Get(status.KeyReleasedTotal),
		statSteps:         stats.Ints.Get(status.KeySteps),
		statSubSteps:      stats.Ints.Get(status.KeySubSteps),
		statStepMs:        stats.Floats.Get(status.KeyStepMs),
		statSimTime:       stats.Floats.Get(status.KeySimTime),
	}
	return s
}

// Stats returns the metrics registry the simulation writes to
func (s *Simulation) Stats() *status.Registry {
	return s.stats
}

// Workers returns the scheduler's worker count
func (s *Simulation) Workers() int {
	return s.scheduler.Workers()
}

// Seed replaces all state with the given attractors and particles
// Particles already marked pinned go straight to the trace archive, snapped to their spawn point at rest
func (s *Simulation) Seed(attractors []core.Attractor, particles []core.Particle) {
	s.Reset()

	for _, a := range attractors {
		s.attractors.Add(a)
	}
	for _, p := range particles {
		if p.Pinned {
			p.Position = p.Spawn
			p.Velocity = r2.Vec{}
			s.archive.Append(p)
		} else {
			s.particles.Add(p)
		}
	}
	s.publishCounts()
}

// Spawn inserts a mobile particle at position; its spawn point is position
func (s *Simulation) Spawn(position, velocity r2.Vec, mass float64, tag core.Tag) {
	s.particles.Add(core.NewParticle(position, velocity, mass, tag))
	s.statMobile.Store(int64(s.particles.Len()))
}

// AddAttractor appends an attractor after the existing ones
// A TagNone or already used tag is replaced by the next free tag; the assigned tag is returned
// Returns TagNone without adding when the tag space is exhausted
func (s *Simulation) AddAttractor(a core.Attractor) core.Tag {
	if a.Tag == core.TagNone || s.attractors.Has(a.Tag) {
		a.Tag = s.attractors.NextTag()
		if a.Tag == core.TagNone {
			return core.TagNone
		}
	}
	s.attractors.Add(a)
	s.statAttractors.Store(int64(s.attractors.Len()))
	return a.Tag
}

// Step runs subSteps sub-steps at the given resolution and archives captured particles
// resolution 0 is treated as 1
func (s *Simulation) Step(subSteps, resolution uint) StepStats {
	if resolution == 0 {
		resolution = 1
	}

	start := time.Now()
	mobile, pinned := s.scheduler.Run(s.particles, s.attractors, int(subSteps), float64(resolution))
	s.particles.replace(mobile)
	s.archive.Append(pinned...)
	elapsed := time.Since(start)

	stats := StepStats{
		Captured: len(pinned),
		SubSteps: int(subSteps),
		Mobile:   len(mobile),
		Elapsed:  elapsed,
	}

	s.statCapturedFrame.Store(int64(stats.Captured))
	s.statCapturedTotal.Add(int64(stats.Captured))
	s.statSteps.Add(1)
	s.statSubSteps.Store(int64(subSteps))
	s.statStepMs.Set(float64(elapsed.Microseconds()) / 1000)
	s.statSimTime.Add(float64(subSteps) / float64(resolution))
	s.publishCounts()

	return stats
}

// Snapshot returns the current state for rendering
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Mobile:     s.particles.Items(),
		Attractors: s.attractors.All(),
		Pinned:     s.archive.Items(),
	}
}

// Counts returns mobile and pinned population sizes
func (s *Simulation) Counts() (mobile, pinned int) {
	return s.particles.Len(), s.archive.Len()
}

// CapturesByTag returns archived trace counts per attractor tag
func (s *Simulation) CapturesByTag() map[core.Tag]int {
	return s.archive.CountByTag()
}

// ReleaseAllPinned moves every archived particle back to the store as mobile, keeping its tag
// Returns the number released; an empty archive is a no-op
func (s *Simulation) ReleaseAllPinned() int {
	if s.archive.Len() == 0 {
		return 0
	}

	released := s.archive.Drain()
	for i := range released {
		physics.Release(&released[i])
	}
	s.particles.AddAll(released)

	s.statReleasedTotal.Add(int64(len(released)))
	s.publishCounts()
	return len(released)
}

// Reset clears attractors, particles, traces and the simulation's own metrics
// Frame loop metrics sharing the registry are left alone
func (s *Simulation) Reset() {
	s.attractors.Clear()
	s.particles.Clear()
	s.archive.Clear()
	s.stats.Zero(status.PrefixEngine, status.PrefixStep)
}

func (s *Simulation) publishCounts() {
	s.statMobile.Store(int64(s.particles.Len()))
	s.statPinned.Store(int64(s.archive.Len()))
	s.statAttractors.Store(int64(s.attractors.Len()))
}
