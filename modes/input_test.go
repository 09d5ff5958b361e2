package modes

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/audio"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/render"
	"github.com/lixenwraith/gravwell/scenario"
	"github.com/lixenwraith/gravwell/status"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestSession(t *testing.T) (*Session, *InputHandler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	world := &scenario.World{
		Attractors: []core.Attractor{core.NewAttractor(r2.Vec{X: 400, Y: 300}, 100, 1)},
		Particles: []core.Particle{
			core.NewParticle(r2.Vec{X: 400, Y: 300}, r2.Vec{}, 1, core.TagNone),
			core.NewParticle(r2.Vec{X: 0, Y: 0}, r2.Vec{}, 1, core.TagNone),
		},
		Colors: map[core.Tag]colorful.Color{1: {R: 1, G: 1, B: 0}},
	}

	reg := status.NewRegistry()
	sim := engine.NewSimulation(1, reg)
	cam := render.NewCamera()
	renderer := render.NewTerminalRenderer(screen, cam, render.NewPalette(world.Colors), reg)
	s := NewSession(sim, world, cam, renderer, audio.NewSoundManager(), parameter.DefaultResolution, engine.SpeedNormal)
	return s, NewInputHandler(s)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	_, h := newTestSession(t)
	assert.False(t, h.HandleEvent(key('q')))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, h.HandleEvent(key('z')))
}

func TestSpeedKeys(t *testing.T) {
	s, h := newTestSession(t)
	assert.Equal(t, uint(10), s.SubSteps())

	h.HandleEvent(key('+'))
	assert.Equal(t, engine.SpeedFast, s.Speed)
	h.HandleEvent(key('-'))
	h.HandleEvent(key('-'))
	assert.Equal(t, engine.SpeedSlow, s.Speed)

	h.HandleEvent(key('5'))
	assert.Equal(t, engine.SpeedWarp, s.Speed)
	assert.Equal(t, "warp", s.Sim.Stats().Strings.Get(status.KeySpeed).Load())

	h.HandleEvent(key(' '))
	assert.True(t, s.Paused)
	assert.Equal(t, uint(0), s.SubSteps())
	assert.True(t, s.Sim.Stats().Bools.Get(status.KeyPaused).Load())

	h.HandleEvent(key('3'))
	assert.False(t, s.Paused)
	assert.Equal(t, engine.SpeedNormal, s.Speed)
}

func TestTickCapturesAndReleases(t *testing.T) {
	s, h := newTestSession(t)

	stats := s.Tick()
	assert.Equal(t, 1, stats.Captured)
	mobile, pinned := s.Sim.Counts()
	assert.Equal(t, 1, mobile)
	assert.Equal(t, 1, pinned)
	assert.Equal(t, int64(1), s.Sim.Stats().Ints.Get(status.KeyFrames).Load())

	h.HandleEvent(key('r'))
	mobile, pinned = s.Sim.Counts()
	assert.Equal(t, 2, mobile)
	assert.Equal(t, 0, pinned)

	// Paused frames still render but do not step
	h.HandleEvent(key(' '))
	stats = s.Tick()
	assert.Zero(t, stats.SubSteps)
	assert.Zero(t, s.Sim.Stats().Ints.Get(status.KeyCapturedFrame).Load())
}

func TestResetKey(t *testing.T) {
	s, h := newTestSession(t)
	s.Tick()
	s.Sim.Spawn(r2.Vec{X: 10, Y: 10}, r2.Vec{}, 1, core.TagNone)

	h.HandleEvent(key('x'))
	mobile, pinned := s.Sim.Counts()
	assert.Equal(t, 2, mobile)
	assert.Equal(t, 0, pinned)
	assert.Equal(t, int64(1), s.Sim.Stats().Ints.Get(status.KeyFrames).Load(), "reset keeps the frame count")
}

func TestMouseSpawnAndAttractor(t *testing.T) {
	s, h := newTestSession(t)
	s.Camera.Snap()

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonPrimary, tcell.ModNone))
	// Holding the button does not spawn again
	h.HandleEvent(tcell.NewEventMouse(11, 5, tcell.ButtonPrimary, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))

	mobile, _ := s.Sim.Counts()
	require.Equal(t, 3, mobile)
	spawned := s.Sim.Snapshot().Mobile[2]
	assert.Equal(t, s.Camera.ScreenToWorld(10, 5), spawned.Position)
	assert.Equal(t, parameter.SpawnMass, spawned.Mass)
	assert.Equal(t, r2.Vec{}, spawned.Velocity)

	h.HandleEvent(tcell.NewEventMouse(20, 8, tcell.ButtonPrimary, tcell.ModShift))
	orbiting := s.Sim.Snapshot().Mobile[3]
	assert.NotEqual(t, r2.Vec{}, orbiting.Velocity)

	h.HandleEvent(tcell.NewEventMouse(30, 10, tcell.ButtonSecondary, tcell.ModNone))
	attractors := s.Sim.Snapshot().Attractors
	require.Len(t, attractors, 2)
	assert.Equal(t, core.Tag(2), attractors[1].Tag)
	assert.Equal(t, parameter.AttractorMass, attractors[1].Mass)

	// The status bar row does not spawn
	h.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(5, 24, tcell.ButtonPrimary, tcell.ModNone))
	mobile, _ = s.Sim.Counts()
	assert.Equal(t, 4, mobile)
}

func TestMouseWheelAndDrag(t *testing.T) {
	s, h := newTestSession(t)
	s.Camera.Snap()
	zoom := s.Camera.Zoom()
	anchor := s.Camera.ScreenToWorld(40, 12)

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.WheelUp, tcell.ModNone))
	s.Camera.Snap()
	assert.Greater(t, s.Camera.Zoom(), zoom)
	after := s.Camera.ScreenToWorld(40, 12)
	assert.InDelta(t, anchor.X, after.X, 1e-9)
	assert.InDelta(t, anchor.Y, after.Y, 1e-9)

	grabbed := s.Camera.ScreenToWorld(10, 10)
	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonMiddle, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(15, 12, tcell.ButtonMiddle, tcell.ModNone))
	s.Camera.Snap()

	// The world point grabbed by the drag follows the cursor
	dropped := s.Camera.ScreenToWorld(15, 12)
	assert.InDelta(t, grabbed.X, dropped.X, 1e-9)
	assert.InDelta(t, grabbed.Y, dropped.Y, 1e-9)
}

func TestTraceToggleAndResize(t *testing.T) {
	s, h := newTestSession(t)
	h.HandleEvent(key('c'))
	assert.True(t, s.Renderer.ToggleTraces(), "traces were hidden by the key")

	h.HandleEvent(tcell.NewEventResize(100, 40))
	assert.Equal(t, 100, s.Renderer.Width())
	assert.Equal(t, 39, s.Renderer.ViewHeight())
}

func TestCapturesSince(t *testing.T) {
	pinned := []core.Particle{{Tag: 1}, {Tag: 2}, {Tag: 2}, {Tag: 3}}
	assert.Equal(t, map[core.Tag]int{2: 1, 3: 1}, capturesSince(pinned, 2))
	assert.Empty(t, capturesSince(pinned, 4))
	assert.Empty(t, capturesSince(pinned, 9))
}
