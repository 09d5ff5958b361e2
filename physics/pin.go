package physics

import (
	"github.com/lixenwraith/gravwell/core"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pin captures p on attractor a: snaps it back to its spawn point, stops it and takes a's tag
func Pin(p *core.Particle, a *core.Attractor) {
	p.Pinned = true
	p.Position = p.Spawn
	p.Velocity = r2.Vec{}
	p.Tag = a.Tag
}

// Release returns a pinned particle to mobile state at its spawn point with zero velocity
// The tag is kept so released traces stay attributable to their last attractor
func Release(p *core.Particle) {
	p.Pinned = false
	p.Position = p.Spawn
	p.Velocity = r2.Vec{}
}
