package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a raw wave whose frequency glides linearly from start to end
type oscillator struct {
	start    float64
	end      float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.start
		if o.duration > 1 {
			freq += (o.end - o.start) * float64(o.position) / float64(o.duration-1)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CaptureFrequency returns the chime pitch for an attractor tag
func CaptureFrequency(tag core.Tag) float64 {
	if tag == core.TagNone {
		return parameter.CaptureBaseFreq
	}
	step := int(tag-1) % parameter.CaptureTagCycle
	return parameter.CaptureBaseFreq * math.Pow(parameter.CaptureTagRatio, float64(step))
}

// CreateCaptureSound generates a bell-like chime for captures into tag
// Louder for larger batches, capped at twice the base volume
func CreateCaptureSound(rate beep.SampleRate, tag core.Tag, count int) beep.Streamer {
	freq := CaptureFrequency(tag)

	var fund beep.Streamer
	if tone, err := generators.SineTone(rate, freq); err == nil {
		fund = beep.Take(rate.N(parameter.CaptureSoundDuration), tone)
	} else {
		fund = NewOscillator(freq, parameter.CaptureSoundDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(fund, parameter.CaptureSoundDuration, parameter.CaptureSoundAttack, parameter.CaptureSoundRelease, rate)

	// Octave overtone decays faster
	over := NewOscillator(freq*2, parameter.CaptureSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.CaptureSoundDuration, parameter.CaptureSoundAttack, parameter.CaptureSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	gain := 1.0
	if count > 1 {
		gain = math.Min(1+math.Log10(float64(count))/2, 2)
	}
	return newVolume(mixed, parameter.CaptureVolume*gain)
}

// CreateReleaseSound generates a rising sweep for releasing all traces
func CreateReleaseSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(parameter.ReleaseStartFreq, parameter.ReleaseEndFreq, parameter.ReleaseSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(sweep, parameter.ReleaseSoundDuration, parameter.ReleaseSoundAttack, parameter.ReleaseSoundRelease, rate)
	return newVolume(shaped, parameter.ReleaseVolume)
}
