package physics

import (
	"math"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pull returns the velocity delta attractor a imparts on particle p for one sub-step
// and whether p lies inside a's capture radius (squared distance below a.Mass)
// resolution divides the force so total impulse per simulated time unit is independent of sub-step count
// Coincident positions yield a finite, very large pull and a capture
func Pull(p *core.Particle, a *core.Attractor, resolution float64) (dv r2.Vec, captured bool) {
	dx := a.Position.X - p.Position.X
	dy := a.Position.Y - p.Position.Y
	d2 := dx*dx + dy*dy

	f := a.Mass / (d2*resolution + parameter.ForceEpsilon)
	theta := math.Atan2(dy, dx)

	return r2.Vec{X: f * math.Cos(theta), Y: f * math.Sin(theta)}, d2 < a.Mass
}

// DistanceSq returns squared distance between a particle and an attractor
func DistanceSq(p *core.Particle, a *core.Attractor) float64 {
	return r2.Norm2(r2.Sub(a.Position, p.Position))
}
