package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/scenario"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps attractor tags to terminal colours
// Trace colours are precomputed as the attractor colour blended toward the background
type Palette struct {
	attractor map[core.Tag]tcell.Color
	trace     map[core.Tag]tcell.Color
}

// NewPalette creates a palette from tag colours
func NewPalette(colors map[core.Tag]colorful.Color) *Palette {
	p := &Palette{
		attractor: make(map[core.Tag]tcell.Color, len(colors)),
		trace:     make(map[core.Tag]tcell.Color, len(colors)),
	}
	for tag, c := range colors {
		p.Set(tag, c)
	}
	return p
}

// Set assigns the colour for tag
func (p *Palette) Set(tag core.Tag, c colorful.Color) {
	p.attractor[tag] = toTcell(c)

	r, g, b := RgbBackground.RGB()
	bg := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	p.trace[tag] = toTcell(bg.BlendLab(c, parameter.TraceDimFactor).Clamped())
}

// Attractor returns the colour of tag, generating one if tag was never set
func (p *Palette) Attractor(tag core.Tag) tcell.Color {
	if c, ok := p.attractor[tag]; ok {
		return c
	}
	p.Set(tag, scenario.HueColor(tag))
	return p.attractor[tag]
}

// Trace returns the dimmed colour for particles pinned by tag
func (p *Palette) Trace(tag core.Tag) tcell.Color {
	if c, ok := p.trace[tag]; ok {
		return c
	}
	p.Set(tag, scenario.HueColor(tag))
	return p.trace[tag]
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
