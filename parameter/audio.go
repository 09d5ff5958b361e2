package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond
)

// Capture chime: one short tone per frame that captured anything
const (
	CaptureSoundDuration = 90 * time.Millisecond
	CaptureSoundAttack   = 4 * time.Millisecond
	CaptureSoundRelease  = 60 * time.Millisecond

	// CaptureBaseFreq is the pitch for tag 1; each further tag steps up a fifth
	CaptureBaseFreq = 440.0
	CaptureTagRatio = 1.5

	// CaptureVolume is linear gain in [0,1]
	CaptureVolume = 0.25
)

// Release sweep
const (
	ReleaseSoundDuration = 350 * time.Millisecond
	ReleaseSoundAttack   = 10 * time.Millisecond
	ReleaseSoundRelease  = 200 * time.Millisecond
	ReleaseStartFreq     = 220.0
	ReleaseEndFreq       = 880.0
	ReleaseVolume        = 0.2
)

// MinSoundGap between consecutive capture chimes
const MinSoundGap = 60 * time.Millisecond

// CaptureTagCycle wraps tag pitches so high tags stay audible
const CaptureTagCycle = 4
