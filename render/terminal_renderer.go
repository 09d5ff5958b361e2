package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/status"
)

// TerminalRenderer draws simulation snapshots onto a tcell screen
// The bottom row is the status bar; everything above is the viewport
type TerminalRenderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette *Palette
	stats   *status.Registry

	showTraces bool
	width      int
	height     int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, camera *Camera, palette *Palette, stats *status.Registry) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:     screen,
		camera:     camera,
		palette:    palette,
		stats:      stats,
		showTraces: true,
		width:      w,
		height:     h,
	}
}

// Resize updates the cached screen dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Width returns the screen width in cells
func (r *TerminalRenderer) Width() int {
	return r.width
}

// ViewHeight returns the number of rows available to the viewport
func (r *TerminalRenderer) ViewHeight() int {
	if r.height <= 1 {
		return 0
	}
	return r.height - 1
}

// ToggleTraces switches trace archive display and returns the new state
func (r *TerminalRenderer) ToggleTraces() bool {
	r.showTraces = !r.showTraces
	return r.showTraces
}

// Palette returns the tag colour table
func (r *TerminalRenderer) Palette() *Palette {
	return r.palette
}

// RenderFrame draws one frame: traces, mobile particles, attractors, then the status bar
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.showTraces {
		for i := range snap.Pinned {
			p := &snap.Pinned[i]
			r.plot(p, parameter.GlyphTrace, defaultStyle.Foreground(r.palette.Trace(p.Tag)))
		}
	}

	particleStyle := defaultStyle.Foreground(RgbParticle)
	for i := range snap.Mobile {
		r.plot(&snap.Mobile[i], parameter.GlyphParticle, particleStyle)
	}

	for i := range snap.Attractors {
		r.drawAttractor(&snap.Attractors[i], defaultStyle)
	}

	r.drawStatusBar(defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) plot(p *core.Particle, glyph rune, style tcell.Style) {
	x, y := r.camera.Cell(p.Position)
	if r.inView(x, y) {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) inView(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.ViewHeight()
}

// drawAttractor draws the capture radius outline when it spans more than a cell, then the body
func (r *TerminalRenderer) drawAttractor(a *core.Attractor, defaultStyle tcell.Style) {
	radius := a.CaptureRadius()
	cells := radius * r.camera.Zoom()
	if cells > 1.5 {
		ringStyle := defaultStyle.Foreground(RgbCaptureRing)
		segments := int(math.Min(8*cells, 720))
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			edge := a.Position
			edge.X += radius * math.Cos(angle)
			edge.Y += radius * math.Sin(angle)
			x, y := r.camera.Cell(edge)
			if r.inView(x, y) {
				r.screen.SetContent(x, y, '∘', nil, ringStyle)
			}
		}
	}

	x, y := r.camera.Cell(a.Position)
	if r.inView(x, y) {
		style := defaultStyle.Foreground(r.palette.Attractor(a.Tag)).Bold(true)
		r.screen.SetContent(x, y, parameter.GlyphAttractor, nil, style)
	}
}

// StatusLine formats the HUD text from the metrics registry
func (r *TerminalRenderer) StatusLine() string {
	speed := r.stats.Strings.Get(status.KeySpeed).Load()
	if r.stats.Bools.Get(status.KeyPaused).Load() {
		speed = "paused"
	}
	return fmt.Sprintf(" %s | mobile %d | pinned %d | +%d | %.2fms | t=%.1f | zoom %.3f ",
		speed,
		r.stats.Ints.Get(status.KeyMobile).Load(),
		r.stats.Ints.Get(status.KeyPinned).Load(),
		r.stats.Ints.Get(status.KeyCapturedFrame).Load(),
		r.stats.Floats.Get(status.KeyStepMs).Get(),
		r.stats.Floats.Get(status.KeySimTime).Get(),
		r.camera.Zoom(),
	)
}

func (r *TerminalRenderer) drawStatusBar(defaultStyle tcell.Style) {
	if r.height < 1 {
		return
	}
	y := r.height - 1

	bg := RgbStatusBg
	switch {
	case r.stats.Bools.Get(status.KeyPaused).Load():
		bg = RgbPausedBg
	case r.stats.Ints.Get(status.KeyCapturedFrame).Load() > 0:
		bg = RgbCaptureFlash
	}
	style := defaultStyle.Foreground(RgbStatusText).Background(bg)

	x := 0
	for _, ch := range r.StatusLine() {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}

	if !r.showTraces {
		hint := " traces hidden "
		start := r.width - len(hint)
		if start > x {
			infoStyle := defaultStyle.Foreground(RgbStatusInfo)
			for i, ch := range hint {
				r.screen.SetContent(start+i, y, ch, nil, infoStyle)
			}
		}
	}
}
