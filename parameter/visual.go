package parameter

// Glyphs
const (
	GlyphParticle  = '•'
	GlyphTrace     = '·'
	GlyphAttractor = '@'
)

// Palette generation for attractors without an explicit colour
const (
	// PaletteChroma and PaletteLuminance are HCL parameters of generated tag colours
	PaletteChroma    = 0.8
	PaletteLuminance = 0.7

	// PaletteHueStep spreads consecutive tags around the hue wheel (golden angle)
	PaletteHueStep = 137.508

	// TraceDimFactor darkens archived traces relative to their attractor colour
	TraceDimFactor = 0.55
)
