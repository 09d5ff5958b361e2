package physics

import (
	"math"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"gonum.org/v1/gonum/spatial/r2"
)

// OrbitalVelocity returns the velocity for a circular orbit of a around pos under this engine's force law
// Per sub-step the pull is m/(d²·res) and displacement is v/res, so per unit time the centripetal
// acceleration is m/d² and the circular speed is sqrt(m/d)
// clockwise selects the direction in screen space (y down)
func OrbitalVelocity(a *core.Attractor, pos r2.Vec, clockwise bool) r2.Vec {
	rel := r2.Sub(pos, a.Position)
	d2 := r2.Norm2(rel)
	if d2 < parameter.OrbitMinRadiusSq || a.Mass <= 0 {
		return r2.Vec{}
	}

	d := math.Sqrt(d2)
	speed := math.Sqrt(a.Mass / d)

	// Tangent is perpendicular to radius
	tx, ty := -rel.Y/d, rel.X/d
	if clockwise {
		tx, ty = -tx, -ty
	}
	return r2.Vec{X: tx * speed, Y: ty * speed}
}

// Nearest returns the index of the attractor closest to pos, or -1 when there are none
// Ties resolve to the earlier attractor
func Nearest(attractors []core.Attractor, pos r2.Vec) int {
	best := -1
	bestD2 := math.Inf(1)
	for i := range attractors {
		d2 := r2.Norm2(r2.Sub(attractors[i].Position, pos))
		if d2 < bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}
