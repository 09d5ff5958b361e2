package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and the frame loop
const (
	KeyMobile        = "sim.mobile"
	KeyPinned        = "sim.pinned"
	KeyAttractors    = "sim.attractors"
	KeyCapturedFrame = "sim.captured.frame"
	KeyCapturedTotal = "sim.captured.total"
	KeyReleasedTotal = "sim.released.total"
	KeySteps         = "sim.steps"
	KeySubSteps      = "step.substeps"
	KeyStepMs        = "step.ms"
	KeySimTime       = "sim.time"
	KeySpeed         = "loop.speed"
	KeyPaused        = "loop.paused"
	KeyFrames        = "loop.frames"

	// PrefixEngine and PrefixStep cover the keys the simulation owns
	PrefixEngine = "sim."
	PrefixStep   = "step."
)

// Registry is the central metrics facade
// Producers cache pointers once; update paths write directly to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Zero resets every numeric and boolean metric; strings are left as set
// With prefixes, only keys starting with one of them are reset
func (r *Registry) Zero(prefixes ...string) {
	match := func(key string) bool {
		if len(prefixes) == 0 {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				return true
			}
		}
		return false
	}

	r.Bools.Range(func(k string, b *atomic.Bool) {
		if match(k) {
			b.Store(false)
		}
	})
	r.Ints.Range(func(k string, i *atomic.Int64) {
		if match(k) {
			i.Store(0)
		}
	})
	r.Floats.Range(func(k string, f *AtomicFloat) {
		if match(k) {
			f.Set(0)
		}
	})
}

// Lines renders all metrics as "key=value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, b *atomic.Bool) {
		lines = append(lines, k+"="+strconv.FormatBool(b.Load()))
	})
	r.Ints.Range(func(k string, i *atomic.Int64) {
		lines = append(lines, k+"="+strconv.FormatInt(i.Load(), 10))
	})
	r.Floats.Range(func(k string, f *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", k, f.Get()))
	})
	r.Strings.Range(func(k string, s *AtomicString) {
		lines = append(lines, k+"="+s.Load())
	})
	return lines
}
