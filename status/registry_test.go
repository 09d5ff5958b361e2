package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyMobile)
	b := r.Ints.Get(KeyMobile)
	assert.Same(t, a, b)
	assert.True(t, r.Ints.Has(KeyMobile))
	assert.False(t, r.Ints.Has(KeyPinned))
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("an unreasonably long speed mode name")
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestRegistryLinesAndZero(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyPinned).Store(3)
	r.Ints.Get(KeyMobile).Store(7)
	r.Floats.Get(KeyStepMs).Set(1.25)
	r.Bools.Get(KeyPaused).Store(true)
	r.Strings.Get(KeySpeed).Store("normal")

	assert.Equal(t, []string{
		"loop.paused=true",
		"sim.mobile=7",
		"sim.pinned=3",
		"step.ms=1.250",
		"loop.speed=normal",
	}, r.Lines())

	r.Zero()
	assert.Equal(t, int64(0), r.Ints.Get(KeyPinned).Load())
	assert.Equal(t, 0.0, r.Floats.Get(KeyStepMs).Get())
	assert.False(t, r.Bools.Get(KeyPaused).Load())
	assert.Equal(t, "normal", r.Strings.Get(KeySpeed).Load())
	assert.Equal(t, 5, r.TotalCount())
}

func TestZeroWithPrefixes(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyMobile).Store(7)
	r.Ints.Get(KeyFrames).Store(12)
	r.Floats.Get(KeyStepMs).Set(1.5)
	r.Bools.Get(KeyPaused).Store(true)

	r.Zero(PrefixEngine, PrefixStep)
	assert.Zero(t, r.Ints.Get(KeyMobile).Load())
	assert.Zero(t, r.Floats.Get(KeyStepMs).Get())
	assert.Equal(t, int64(12), r.Ints.Get(KeyFrames).Load())
	assert.True(t, r.Bools.Get(KeyPaused).Load())
}
