package scenario

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/gcfg.v1"
)

// ExampleScenarioFile documents every section and key a scenario file accepts
const ExampleScenarioFile = `[Simulation]
# Sub-steps per unit of simulated time. Optional, defaults to 10.
Resolution = 10
# Initial speed mode: paused, slow, normal, fast or warp. Optional.
Speed = normal
# Worker goroutines for the step scheduler. Optional, 0 uses every CPU.
Workers = 0

# One section per attractor. Mass is required and doubles as the squared
# capture radius.
[Attractor "yellow"]
X = 660.6
Y = 300.6
Mass = 1000
# Optional hex colour, quoted since # starts a comment; generated from a hue wheel when absent.
Color = "#ffff00"
# Optional explicit tag, 1-255. Attractors are checked in tag order; untagged
# attractors follow in name order.
Tag = 1

# A rectangular grid of mobile particles.
[Field "grid"]
XMin = 0
XMax = 800
YMin = 0
YMax = 600
# Grid spacing. Optional, defaults to 20.
Spacing = 20
# Particle mass. Optional, defaults to 100.
Mass = 100
# Perlin noise displacement amplitude. Optional.
Jitter = 0
# Give each particle a circular orbit velocity around its nearest attractor.
Orbit = false
# Noise seed. Optional.
Seed = 1

# Particles evenly spaced on a circle around a named attractor.
[Ring "halo"]
Attractor = yellow
Radius = 120
Count = 64
Mass = 100
Orbit = true

# Whitespace separated columns: x y vx vy mass. Relative paths are resolved
# against the scenario file's directory.
[Seeds "extra"]
File = seeds.txt
`

// SimulationConfig holds engine settings
type SimulationConfig struct {
	Resolution int
	Speed      string
	Workers    int

	// Resolved by CheckInit
	SpeedMode engine.SpeedMode
}

// CheckInit fills defaults and validates the section
func (sim *SimulationConfig) CheckInit() error {
	if sim.Resolution < 0 {
		return fmt.Errorf("Resolution must be positive, but is %d", sim.Resolution)
	} else if sim.Resolution == 0 {
		sim.Resolution = parameter.DefaultResolution
	}

	if sim.Workers < 0 {
		return fmt.Errorf("Workers must be non-negative, but is %d", sim.Workers)
	}

	if strings.TrimSpace(sim.Speed) == "" {
		sim.SpeedMode = engine.SpeedNormal
		return nil
	}
	mode, err := engine.ParseSpeedMode(strings.TrimSpace(sim.Speed))
	if err != nil {
		return fmt.Errorf("Speed: %w", err)
	}
	sim.SpeedMode = mode
	return nil
}

// AttractorConfig is a fixed heavy body
type AttractorConfig struct {
	// Required
	X, Y, Mass float64

	// Optional
	Color string
	Tag   int

	// Resolved by CheckInit
	Name     string
	RGB      colorful.Color
	HasColor bool
}

// CheckInit validates the attractor and parses its colour
func (a *AttractorConfig) CheckInit(name string) error {
	if a.Mass <= 0 || math.IsNaN(a.Mass) || math.IsInf(a.Mass, 0) {
		return fmt.Errorf("need a positive, finite Mass for Attractor '%s'", name)
	}
	if !finite(a.X) || !finite(a.Y) {
		return fmt.Errorf("position of Attractor '%s' must be finite", name)
	}
	if a.Tag < 0 || a.Tag > parameter.MaxAttractors {
		return fmt.Errorf(
			"Tag of Attractor '%s' must be in range [1, %d], but is %d",
			name, parameter.MaxAttractors, a.Tag,
		)
	}

	a.Name = name
	if a.Color != "" {
		c, err := colorful.Hex(strings.TrimSpace(a.Color))
		if err != nil {
			return fmt.Errorf("Color of Attractor '%s': %w", name, err)
		}
		a.RGB = c
		a.HasColor = true
	}
	return nil
}

// FieldConfig is a rectangular grid of mobile particles
type FieldConfig struct {
	// Required
	XMin, XMax, YMin, YMax float64

	// Optional
	Spacing float64
	Mass    float64
	Jitter  float64
	Orbit   bool
	Seed    int64
}

// CheckInit fills defaults and validates the field bounds
func (f *FieldConfig) CheckInit(name string) error {
	if !finite(f.XMin) || !finite(f.XMax) || !finite(f.YMin) || !finite(f.YMax) {
		return fmt.Errorf("bounds of Field '%s' must be finite", name)
	}
	if f.XMax < f.XMin {
		return fmt.Errorf("XMax of Field '%s' is below XMin (%g < %g)", name, f.XMax, f.XMin)
	} else if f.YMax < f.YMin {
		return fmt.Errorf("YMax of Field '%s' is below YMin (%g < %g)", name, f.YMax, f.YMin)
	}

	if !finite(f.Spacing) {
		return fmt.Errorf("Spacing of Field '%s' must be finite", name)
	} else if f.Spacing == 0 {
		f.Spacing = parameter.DefaultFieldSpacing
	} else if f.Spacing < 0 {
		return fmt.Errorf("Field '%s' given a negative Spacing, %g", name, f.Spacing)
	}
	if !finite(f.Mass) {
		return fmt.Errorf("Mass of Field '%s' must be finite", name)
	} else if f.Mass == 0 {
		f.Mass = parameter.SpawnMass
	}
	if !finite(f.Jitter) {
		return fmt.Errorf("Jitter of Field '%s' must be finite", name)
	} else if f.Jitter < 0 {
		return fmt.Errorf("Field '%s' given a negative Jitter, %g", name, f.Jitter)
	}

	nx, ny := f.gridSize()
	if nx*ny > parameter.MaxSeededParticles {
		return fmt.Errorf(
			"Field '%s' would seed %.0f particles, more than %d",
			name, nx*ny, parameter.MaxSeededParticles,
		)
	}
	return nil
}

// gridSize returns the lattice dimensions as floats so oversized grids cannot overflow
func (f *FieldConfig) gridSize() (nx, ny float64) {
	nx = math.Floor((f.XMax-f.XMin)/f.Spacing) + 1
	ny = math.Floor((f.YMax-f.YMin)/f.Spacing) + 1
	return nx, ny
}

// RingConfig places particles on a circle around an attractor
type RingConfig struct {
	// Required
	Attractor string
	Radius    float64
	Count     int

	// Optional
	Mass  float64
	Orbit bool
}

// CheckInit fills defaults and validates the ring against known attractors
func (r *RingConfig) CheckInit(name string, attractors map[string]*AttractorConfig) error {
	if _, ok := attractors[r.Attractor]; !ok {
		return fmt.Errorf("Ring '%s' references unknown Attractor '%s'", name, r.Attractor)
	}
	if r.Radius <= 0 || !finite(r.Radius) {
		return fmt.Errorf("need a positive, finite Radius for Ring '%s'", name)
	}
	if r.Count <= 0 {
		return fmt.Errorf("need a positive Count for Ring '%s'", name)
	} else if r.Count > parameter.MaxSeededParticles {
		return fmt.Errorf("Ring '%s' Count %d is more than %d", name, r.Count, parameter.MaxSeededParticles)
	}
	if !finite(r.Mass) {
		return fmt.Errorf("Mass of Ring '%s' must be finite", name)
	} else if r.Mass == 0 {
		r.Mass = parameter.SpawnMass
	}
	return nil
}

// SeedsConfig names a particle table file
type SeedsConfig struct {
	File string
}

// CheckInit resolves the table path relative to dir
func (s *SeedsConfig) CheckInit(name, dir string) error {
	if s.File == "" {
		return fmt.Errorf("need a File for Seeds '%s'", name)
	}
	if !filepath.IsAbs(s.File) && dir != "" {
		s.File = filepath.Join(dir, s.File)
	}
	return nil
}

// Scenario is a parsed scenario file
type Scenario struct {
	Simulation SimulationConfig
	Attractor  map[string]*AttractorConfig
	Field      map[string]*FieldConfig
	Ring       map[string]*RingConfig
	Seeds      map[string]*SeedsConfig
}

// Load reads and validates the scenario file at path
func Load(path string) (*Scenario, error) {
	sc := &Scenario{}
	if err := gcfg.ReadFileInto(sc, path); err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	if err := sc.CheckInit(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	log.Printf("scenario: loaded %s (%d attractors, %d fields, %d rings, %d seed tables)",
		path, len(sc.Attractor), len(sc.Field), len(sc.Ring), len(sc.Seeds))
	return sc, nil
}

// Parse reads and validates a scenario from a string; relative seed paths resolve against dir
func Parse(text, dir string) (*Scenario, error) {
	sc := &Scenario{}
	if err := gcfg.ReadStringInto(sc, text); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.CheckInit(dir); err != nil {
		return nil, err
	}
	return sc, nil
}

// CheckInit validates every section; dir resolves relative seed table paths
func (sc *Scenario) CheckInit(dir string) error {
	if err := sc.Simulation.CheckInit(); err != nil {
		return err
	}

	if len(sc.Attractor) > parameter.MaxAttractors {
		return fmt.Errorf("at most %d attractors are supported, got %d", parameter.MaxAttractors, len(sc.Attractor))
	}

	seen := make(map[int]string)
	for _, name := range sortedKeys(sc.Attractor) {
		a := sc.Attractor[name]
		if err := a.CheckInit(name); err != nil {
			return err
		}
		if a.Tag == 0 {
			continue
		}
		if other, dup := seen[a.Tag]; dup {
			return fmt.Errorf("Attractors '%s' and '%s' share Tag %d", other, name, a.Tag)
		}
		seen[a.Tag] = name
	}

	for _, name := range sortedKeys(sc.Field) {
		if err := sc.Field[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(sc.Ring) {
		if err := sc.Ring[name].CheckInit(name, sc.Attractor); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(sc.Seeds) {
		if err := sc.Seeds[name].CheckInit(name, dir); err != nil {
			return err
		}
	}
	return nil
}

// AddSeeds registers an extra seed table, as given on the command line
func (sc *Scenario) AddSeeds(path string) {
	if sc.Seeds == nil {
		sc.Seeds = make(map[string]*SeedsConfig)
	}
	name := fmt.Sprintf("cli-%d", len(sc.Seeds))
	sc.Seeds[name] = &SeedsConfig{File: path}
}

// orderedAttractors returns attractors in tie-break order with tags assigned
// Explicit tags come first in tag order, the rest follow in name order with the next free tags
func (sc *Scenario) orderedAttractors() []*AttractorConfig {
	out := make([]*AttractorConfig, 0, len(sc.Attractor))
	var untagged []*AttractorConfig
	used := make(map[int]bool)

	for _, name := range sortedKeys(sc.Attractor) {
		a := sc.Attractor[name]
		if a.Tag == 0 {
			untagged = append(untagged, a)
			continue
		}
		used[a.Tag] = true
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })

	next := 1
	for _, a := range untagged {
		for used[next] {
			next++
		}
		a.Tag = next
		used[next] = true
		out = append(out, a)
	}
	return out
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
