package physics

import (
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"gonum.org/v1/gonum/spatial/r2"
)

// Advance moves p by its current velocity scaled to one sub-step, then damps the velocity
// Position uses the velocity from the previous sub-step (semi-implicit Euler)
func Advance(p *core.Particle, resolution float64) {
	p.Position.X += p.Velocity.X / resolution
	p.Position.Y += p.Velocity.Y / resolution
	p.Velocity.X *= parameter.VelocityDamping
	p.Velocity.Y *= parameter.VelocityDamping
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(p *core.Particle, dv r2.Vec) {
	p.Velocity.X += dv.X
	p.Velocity.Y += dv.Y
}

// SubStep advances a mobile particle by one sub-step against attractors in order
// Returns true if p was captured; the first capturing attractor wins and no later attractor is evaluated
// Pinned particles are left untouched
func SubStep(p *core.Particle, attractors []core.Attractor, resolution float64) bool {
	if p.Pinned {
		return false
	}

	Advance(p, resolution)

	for i := range attractors {
		dv, captured := Pull(p, &attractors[i], resolution)
		if captured {
			Pin(p, &attractors[i])
			return true
		}
		ApplyImpulse(p, dv)
	}
	return false
}
