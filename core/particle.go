package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tag identifies the attractor a trace belongs to and doubles as its colour index
type Tag uint8

// TagNone marks a particle that has never been captured
const TagNone Tag = 0

// Particle is a mobile or pinned body in simulation space
type Particle struct {
	// Position is the current simulated coordinate
	Position r2.Vec
	// Spawn is the creation coordinate; captured particles snap back to it
	Spawn r2.Vec
	// Velocity is applied as Velocity/resolution per sub-step
	Velocity r2.Vec
	// Mass is fixed at creation, sign may be negative for repulsive charge
	Mass float64
	// Pinned is set exactly once, at capture
	Pinned bool
	// Tag is TagNone until capture, then the capturing attractor's tag
	Tag Tag
}

// NewParticle returns a mobile particle whose spawn point is its position
func NewParticle(position, velocity r2.Vec, mass float64, tag Tag) Particle {
	return Particle{
		Position: position,
		Spawn:    position,
		Velocity: velocity,
		Mass:     mass,
		Tag:      tag,
	}
}

// Attractor is an immovable heavy body
// Mass is both the gravitational pull and the squared capture radius
type Attractor struct {
	Position r2.Vec
	Mass     float64
	Tag      Tag
}

// NewAttractor returns an attractor at position
func NewAttractor(position r2.Vec, mass float64, tag Tag) Attractor {
	return Attractor{Position: position, Mass: mass, Tag: tag}
}

// Pinned reports true; attractors never move
func (a Attractor) Pinned() bool { return true }

// CaptureRadius returns the euclidean radius inside which particles are captured
// Negative or zero mass captures nothing
func (a Attractor) CaptureRadius() float64 {
	if a.Mass <= 0 {
		return 0
	}
	return math.Sqrt(a.Mass)
}
