package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays capture and release cues through one mixer
// Every method is a no-op until Initialize succeeds, so the simulator runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastCapture time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and releases the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether output is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCaptures chimes for the tag that captured most particles this frame
// Chimes closer together than MinSoundGap are dropped
func (sm *SoundManager) PlayCaptures(byTag map[core.Tag]int) {
	tag, count := dominantTag(byTag)
	if count == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.now()
	if now.Sub(sm.lastCapture) < parameter.MinSoundGap {
		return
	}
	sm.lastCapture = now

	sm.add(CreateCaptureSound(sampleRate, tag, count))
}

// PlayRelease plays the release sweep
func (sm *SoundManager) PlayRelease() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.add(CreateReleaseSound(sampleRate))
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// dominantTag returns the tag with the most captures, lowest tag on ties
func dominantTag(byTag map[core.Tag]int) (core.Tag, int) {
	var best core.Tag
	most := 0
	for tag, n := range byTag {
		if n > most || (n == most && n > 0 && tag < best) {
			best, most = tag, n
		}
	}
	return best, most
}
