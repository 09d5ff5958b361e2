package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/status"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestRenderer(t *testing.T, w, h int) (tcell.SimulationScreen, *TerminalRenderer, *status.Registry) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cam := NewCamera()
	cam.targetZoom = 1
	cam.Snap()

	reg := status.NewRegistry()
	palette := NewPalette(map[core.Tag]colorful.Color{1: {R: 1, G: 0, B: 0}})
	return screen, NewTerminalRenderer(screen, cam, palette, reg), reg
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRenderFrameDrawsLayers(t *testing.T) {
	screen, r, _ := newTestRenderer(t, 40, 10)

	pinned := core.NewParticle(r2.Vec{X: 5, Y: 4}, r2.Vec{}, 1, 1)
	pinned.Pinned = true
	snap := engine.Snapshot{
		Mobile:     []core.Particle{core.NewParticle(r2.Vec{X: 10, Y: 2}, r2.Vec{}, 1, core.TagNone)},
		Attractors: []core.Attractor{core.NewAttractor(r2.Vec{X: 30, Y: 10}, 1, 1)},
		Pinned:     []core.Particle{pinned},
	}
	r.RenderFrame(snap)

	// Rows are world y / CellAspect at zoom 1
	ch, _, style, _ := screen.GetContent(10, 1)
	assert.Equal(t, parameter.GlyphParticle, ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbParticle, fg)

	ch, _, style, _ = screen.GetContent(5, 2)
	assert.Equal(t, parameter.GlyphTrace, ch)
	fg, _, _ = style.Decompose()
	assert.Equal(t, r.Palette().Trace(1), fg)

	ch, _, style, _ = screen.GetContent(30, 5)
	assert.Equal(t, parameter.GlyphAttractor, ch)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)

	assert.Contains(t, rowText(screen, 9, 40), "mobile")

	r.ToggleTraces()
	r.RenderFrame(snap)
	ch, _, _, _ = screen.GetContent(5, 2)
	assert.NotEqual(t, parameter.GlyphTrace, ch)
}

func TestRenderFrameClipsToViewport(t *testing.T) {
	screen, r, _ := newTestRenderer(t, 20, 6)

	snap := engine.Snapshot{
		Mobile: []core.Particle{
			core.NewParticle(r2.Vec{X: -5, Y: 0}, r2.Vec{}, 1, core.TagNone),
			core.NewParticle(r2.Vec{X: 500, Y: 0}, r2.Vec{}, 1, core.TagNone),
			// Row 5 is the status bar
			core.NewParticle(r2.Vec{X: 3, Y: 10}, r2.Vec{}, 1, core.TagNone),
		},
	}
	assert.NotPanics(t, func() { r.RenderFrame(snap) })

	ch, _, _, _ := screen.GetContent(3, 5)
	assert.NotEqual(t, parameter.GlyphParticle, ch)
}

func TestRenderCaptureRing(t *testing.T) {
	screen, r, _ := newTestRenderer(t, 60, 30)
	snap := engine.Snapshot{Attractors: []core.Attractor{core.NewAttractor(r2.Vec{X: 30, Y: 30}, 100, 1)}}
	r.RenderFrame(snap)

	// Radius 10 at zoom 1: the ring passes through x=40 on the attractor's row
	ch, _, _, _ := screen.GetContent(40, 15)
	assert.Equal(t, '∘', ch)
	ch, _, _, _ = screen.GetContent(30, 15)
	assert.Equal(t, parameter.GlyphAttractor, ch)
}

func TestStatusLine(t *testing.T) {
	_, r, reg := newTestRenderer(t, 80, 10)
	reg.Strings.Get(status.KeySpeed).Store("fast")
	reg.Ints.Get(status.KeyMobile).Store(12)
	reg.Ints.Get(status.KeyPinned).Store(3)
	reg.Ints.Get(status.KeyCapturedFrame).Store(2)

	line := r.StatusLine()
	assert.Contains(t, line, "fast")
	assert.Contains(t, line, "mobile 12")
	assert.Contains(t, line, "pinned 3")
	assert.Contains(t, line, "+2")

	reg.Bools.Get(status.KeyPaused).Store(true)
	assert.Contains(t, r.StatusLine(), "paused")
}

func TestPaletteGeneratesMissingTags(t *testing.T) {
	p := NewPalette(nil)
	c := p.Attractor(7)
	assert.Equal(t, c, p.Attractor(7))
	assert.NotEqual(t, c, p.Trace(7))
}
