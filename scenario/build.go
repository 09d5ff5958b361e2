package scenario

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r2"
)

// World is the initial state produced from a scenario
type World struct {
	Attractors []core.Attractor
	Particles  []core.Particle
	// Colors maps attractor tags to their display colour
	Colors map[core.Tag]colorful.Color
}

// Build expands the scenario into attractors and particles
// Attractors come first in tie-break order; particles follow fields, rings, then seed tables, each in name order
func (sc *Scenario) Build() (*World, error) {
	w := &World{Colors: make(map[core.Tag]colorful.Color)}

	for _, a := range sc.orderedAttractors() {
		tag := core.Tag(a.Tag)
		w.Attractors = append(w.Attractors, core.NewAttractor(r2.Vec{X: a.X, Y: a.Y}, a.Mass, tag))
		if a.HasColor {
			w.Colors[tag] = a.RGB
		} else {
			w.Colors[tag] = HueColor(tag)
		}
	}

	// A Scenario assembled in code may not have been through CheckInit
	for _, name := range sortedKeys(sc.Field) {
		f := sc.Field[name]
		if err := f.CheckInit(name); err != nil {
			return nil, err
		}
		w.Particles = append(w.Particles, f.particles(w.Attractors)...)
	}

	for _, name := range sortedKeys(sc.Ring) {
		r := sc.Ring[name]
		if err := r.CheckInit(name, sc.Attractor); err != nil {
			return nil, err
		}
		center := sc.Attractor[r.Attractor]
		a := core.NewAttractor(r2.Vec{X: center.X, Y: center.Y}, center.Mass, core.Tag(center.Tag))
		w.Particles = append(w.Particles, r.particles(&a)...)
	}

	for _, name := range sortedKeys(sc.Seeds) {
		ps, err := ReadSeeds(sc.Seeds[name].File)
		if err != nil {
			return nil, fmt.Errorf("Seeds '%s': %w", name, err)
		}
		w.Particles = append(w.Particles, ps...)
	}

	return w, nil
}

// HueColor returns a generated colour for tag, spaced around the HCL hue wheel
func HueColor(tag core.Tag) colorful.Color {
	hue := math.Mod(float64(tag)*parameter.PaletteHueStep, 360)
	return colorful.Hcl(hue, parameter.PaletteChroma, parameter.PaletteLuminance).Clamped()
}

func (f *FieldConfig) particles(attractors []core.Attractor) []core.Particle {
	var noise *perlin.Perlin
	if f.Jitter > 0 {
		noise = perlin.NewPerlin(parameter.PerlinAlpha, parameter.PerlinBeta, parameter.PerlinOctaves, f.Seed)
	}

	fx, fy := f.gridSize()
	nx, ny := int(fx), int(fy)
	out := make([]core.Particle, 0, nx*ny)

	for i := 0; i < nx; i++ {
		x := f.XMin + float64(i)*f.Spacing
		for j := 0; j < ny; j++ {
			y := f.YMin + float64(j)*f.Spacing
			pos := r2.Vec{X: x, Y: y}

			if noise != nil {
				// Offset the lattice so samples never land on integer noise coordinates
				sx := x*parameter.PerlinScale + 0.5
				sy := y*parameter.PerlinScale + 0.5
				pos.X += f.Jitter * noise.Noise2D(sx, sy)
				pos.Y += f.Jitter * noise.Noise2D(sy+17.3, sx+17.3)
			}

			var vel r2.Vec
			if f.Orbit {
				if k := physics.Nearest(attractors, pos); k >= 0 {
					vel = physics.OrbitalVelocity(&attractors[k], pos, false)
				}
			}
			out = append(out, core.NewParticle(pos, vel, f.Mass, core.TagNone))
		}
	}
	return out
}

func (r *RingConfig) particles(a *core.Attractor) []core.Particle {
	out := make([]core.Particle, 0, r.Count)
	step := 2 * math.Pi / float64(r.Count)
	for i := 0; i < r.Count; i++ {
		angle := float64(i) * step
		pos := r2.Add(a.Position, r2.Vec{X: r.Radius * math.Cos(angle), Y: r.Radius * math.Sin(angle)})

		var vel r2.Vec
		if r.Orbit {
			vel = physics.OrbitalVelocity(a, pos, false)
		}
		out = append(out, core.NewParticle(pos, vel, r.Mass, core.TagNone))
	}
	return out
}

// ReadSeeds reads a particle table with columns x y vx vy mass
// A zero mass row uses the default spawn mass
func ReadSeeds(path string) ([]core.Particle, error) {
	cols, err := table.ReadTable(path, []int{0, 1, 2, 3, 4}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, vxs, vys, ms := cols[0], cols[1], cols[2], cols[3], cols[4]
	out := make([]core.Particle, 0, len(xs))
	for i := range xs {
		mass := ms[i]
		if mass == 0 {
			mass = parameter.SpawnMass
		}
		pos := r2.Vec{X: xs[i], Y: ys[i]}
		vel := r2.Vec{X: vxs[i], Y: vys[i]}
		if !finite(pos.X) || !finite(pos.Y) || !finite(vel.X) || !finite(vel.Y) || !finite(mass) {
			return nil, fmt.Errorf("%s: row %d is not finite", path, i+1)
		}
		out = append(out, core.NewParticle(pos, vel, mass, core.TagNone))
	}
	return out, nil
}
