package modes

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/gravwell/audio"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/render"
	"github.com/lixenwraith/gravwell/scenario"
	"github.com/lixenwraith/gravwell/status"
	"gonum.org/v1/gonum/spatial/r2"
)

// Session is the interactive state owned by the frame loop
// Input handling and ticking both run on the loop goroutine
type Session struct {
	Sim      *engine.Simulation
	World    *scenario.World
	Camera   *render.Camera
	Renderer *render.TerminalRenderer
	Sound    *audio.SoundManager

	Resolution uint
	Speed      engine.SpeedMode
	Paused     bool

	statSpeed  *status.AtomicString
	statPaused *atomic.Bool
	statFrames *atomic.Int64
}

// NewSession seeds sim from world and frames the camera on it
func NewSession(sim *engine.Simulation, world *scenario.World, camera *render.Camera, renderer *render.TerminalRenderer,
	sound *audio.SoundManager, resolution uint, speed engine.SpeedMode) *Session {
	stats := sim.Stats()
	s := &Session{
		Sim:        sim,
		World:      world,
		Camera:     camera,
		Renderer:   renderer,
		Sound:      sound,
		Resolution: resolution,
		Speed:      speed,

		statSpeed:  stats.Strings.Get(status.KeySpeed),
		statPaused: stats.Bools.Get(status.KeyPaused),
		statFrames: stats.Ints.Get(status.KeyFrames),
	}
	s.Reset()
	s.Recenter()
	camera.Snap()
	return s
}

// SubSteps returns the sub-steps the next frame will run
func (s *Session) SubSteps() uint {
	if s.Paused {
		return 0
	}
	return s.Speed.SubSteps()
}

// Tick runs one frame: step, capture chime, camera, render
func (s *Session) Tick() engine.StepStats {
	var stats engine.StepStats
	if sub := s.SubSteps(); sub > 0 {
		_, before := s.Sim.Counts()
		stats = s.Sim.Step(sub, s.Resolution)
		if stats.Captured > 0 {
			s.Sound.PlayCaptures(capturesSince(s.Sim.Snapshot().Pinned, before))
		}
	} else {
		s.Sim.Stats().Ints.Get(status.KeyCapturedFrame).Store(0)
	}

	s.statFrames.Add(1)
	s.publish()
	s.Camera.Update()
	s.Renderer.RenderFrame(s.Sim.Snapshot())
	return stats
}

// Reset reseeds the simulation from the scenario world
func (s *Session) Reset() {
	s.Sim.Seed(s.World.Attractors, s.World.Particles)
	s.publish()
	log.Printf("session: reset to %d attractors, %d particles", len(s.World.Attractors), len(s.World.Particles))
}

// Recenter frames the bounding box of attractors and mobile particles
func (s *Session) Recenter() {
	snap := s.Sim.Snapshot()
	lo, hi, ok := bounds(snap)
	if !ok {
		return
	}
	s.Camera.CenterOn(lo, hi, s.Renderer.Width(), s.Renderer.ViewHeight())
}

// SetSpeed selects a speed mode and unpauses
func (s *Session) SetSpeed(mode engine.SpeedMode) {
	s.Speed = mode
	s.Paused = false
	s.publish()
}

// TogglePause flips the paused flag
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
	s.publish()
}

// Release returns every trace to the mobile population
func (s *Session) Release() int {
	n := s.Sim.ReleaseAllPinned()
	if n > 0 {
		s.Sound.PlayRelease()
	}
	return n
}

// SpawnAt adds a particle at a screen cell, with orbit velocity around the nearest attractor if orbit is set
func (s *Session) SpawnAt(x, y int, mass float64, orbit bool) {
	pos := s.Camera.ScreenToWorld(x, y)
	var vel r2.Vec
	if orbit {
		attractors := s.Sim.Snapshot().Attractors
		if k := physics.Nearest(attractors, pos); k >= 0 {
			vel = physics.OrbitalVelocity(&attractors[k], pos, false)
		}
	}
	s.Sim.Spawn(pos, vel, mass, core.TagNone)
}

// AttractorAt adds an attractor at a screen cell and returns its tag, TagNone if none could be added
func (s *Session) AttractorAt(x, y int, mass float64) core.Tag {
	tag := s.Sim.AddAttractor(core.NewAttractor(s.Camera.ScreenToWorld(x, y), mass, core.TagNone))
	if tag != core.TagNone {
		// Touch the palette so the colour is stable from the first frame
		s.Renderer.Palette().Attractor(tag)
	}
	return tag
}

func (s *Session) publish() {
	s.statSpeed.Store(s.Speed.String())
	s.statPaused.Store(s.Paused)
}

// capturesSince counts archive entries appended after index from by tag
func capturesSince(pinned []core.Particle, from int) map[core.Tag]int {
	byTag := make(map[core.Tag]int)
	if from < 0 || from > len(pinned) {
		return byTag
	}
	for i := from; i < len(pinned); i++ {
		byTag[pinned[i].Tag]++
	}
	return byTag
}

// bounds returns the bounding box of attractors and mobile particles
func bounds(snap engine.Snapshot) (lo, hi r2.Vec, ok bool) {
	first := true
	grow := func(p r2.Vec) {
		if first {
			lo, hi, first = p, p, false
			return
		}
		lo = r2.Vec{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = r2.Vec{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	for i := range snap.Attractors {
		grow(snap.Attractors[i].Position)
	}
	for i := range snap.Mobile {
		grow(snap.Mobile[i].Position)
	}
	return lo, hi, !first
}
