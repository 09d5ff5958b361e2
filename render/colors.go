package render

import "github.com/gdamore/tcell/v2"

// RGB colour definitions for fixed UI elements
var (
	RgbBackground   = tcell.NewRGBColor(10, 10, 18)    // Near-black space
	RgbParticle     = tcell.NewRGBColor(255, 255, 255) // White, as spawned
	RgbCaptureRing  = tcell.NewRGBColor(70, 70, 90)    // Faint capture radius outline
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPausedBg     = tcell.NewRGBColor(255, 165, 0)   // Orange while paused
	RgbCaptureFlash = tcell.NewRGBColor(144, 238, 144) // Light green when captures happened this frame
	RgbStatusInfo   = tcell.NewRGBColor(180, 180, 180) // Gray for secondary HUD text
)
