package engine

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/physics"
)

// Scheduler runs sub-steps over the particle store
// Each sub-step maps every mobile particle into a scratch buffer across the worker pool,
// waits for all workers, then partitions scratch into still-mobile and newly pinned
// A Scheduler is owned by one Simulation and is not safe for concurrent Run calls
type Scheduler struct {
	workers int

	scratch []core.Particle
	pinned  []core.Particle

	// Per-worker capture counts for the current sub-step
	captures []int
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler with the given worker count, runtime.NumCPU() when workers <= 0
func NewScheduler(workers int) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers:  workers,
		captures: make([]int, workers),
	}
}

// Workers returns the size of the worker pool
func (s *Scheduler) Workers() int {
	return s.workers
}

// Run advances store by subSteps sub-steps against attractors
// Returns the particles still mobile and those pinned during this call, in stable order
// Both slices are owned by the scheduler and the store and stay valid until the next Run;
// the store is not modified, the caller installs the mobile slice
func (s *Scheduler) Run(store *ParticleStore, attractors *AttractorSet, subSteps int, resolution float64) (mobile, newlyPinned []core.Particle) {
	cur := store.Items()
	s.pinned = s.pinned[:0]

	if subSteps <= 0 || len(cur) == 0 {
		return cur, s.pinned
	}

	set := attractors.All()

	for step := 0; step < subSteps && len(cur) > 0; step++ {
		next := s.scratchFor(len(cur))
		captured := s.mapStep(cur, next, set, resolution)

		if captured == 0 {
			// Nothing left the working set, swap buffers instead of copying
			s.scratch = cur[:cap(cur)]
			cur = next
			continue
		}

		cur = s.partition(next, cur[:0])
	}

	return cur, s.pinned
}

// scratchFor returns a scratch slice of length n, growing the buffer if needed
func (s *Scheduler) scratchFor(n int) []core.Particle {
	if cap(s.scratch) < n {
		s.scratch = make([]core.Particle, n, n+n/4)
	}
	return s.scratch[:n]
}

// mapStep writes the advanced state of every particle of src into dst and returns the capture count
// Particles are independent, so chunks run concurrently with no shared writes
func (s *Scheduler) mapStep(src, dst []core.Particle, set []core.Attractor, resolution float64) int {
	n := len(src)
	if s.workers == 1 || n < parameter.ParallelThreshold {
		return advanceChunk(src, dst, set, resolution)
	}

	chunk := (n + s.workers - 1) / s.workers
	if chunk < parameter.MinChunkSize {
		chunk = parameter.MinChunkSize
	}

	used := 0
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		id := used
		used++

		// Last chunk runs on the calling goroutine
		if hi == n {
			s.captures[id] = advanceChunk(src[lo:hi], dst[lo:hi], set, resolution)
			break
		}

		s.wg.Add(1)
		go func(lo, hi, id int) {
			defer s.wg.Done()
			s.captures[id] = advanceChunk(src[lo:hi], dst[lo:hi], set, resolution)
		}(lo, hi, id)
	}
	s.wg.Wait()

	total := 0
	for id := 0; id < used; id++ {
		total += s.captures[id]
	}
	return total
}

// advanceChunk copies each particle into dst and runs one sub-step on the copy
func advanceChunk(src, dst []core.Particle, set []core.Attractor, resolution float64) int {
	captured := 0
	for i := range src {
		dst[i] = src[i]
		if physics.SubStep(&dst[i], set, resolution) {
			captured++
		}
	}
	return captured
}

// partition appends mobile particles of src to mobile and pinned ones to the scheduler's pinned list
// src and mobile must not share a backing array
func (s *Scheduler) partition(src, mobile []core.Particle) []core.Particle {
	for i := range src {
		if src[i].Pinned {
			s.pinned = append(s.pinned, src[i])
		} else {
			mobile = append(mobile, src[i])
		}
	}
	return mobile
}
