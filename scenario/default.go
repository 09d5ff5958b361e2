package scenario

import (
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lucasb-eyer/go-colorful"
)

// Default returns the built-in scenario: three attractors of mass 1000 over a field of resting particles
func Default() *Scenario {
	return &Scenario{
		Simulation: SimulationConfig{
			Resolution: parameter.DefaultResolution,
			Speed:      engine.SpeedNormal.String(),
			SpeedMode:  engine.SpeedNormal,
		},
		Attractor: map[string]*AttractorConfig{
			"yellow": {X: 660.6, Y: 300.6, Mass: parameter.AttractorMass, Tag: 1, Name: "yellow",
				RGB: colorful.Color{R: 1, G: 1, B: 0}, HasColor: true},
			"blue": {X: 100.6, Y: 300.6, Mass: parameter.AttractorMass, Tag: 2, Name: "blue",
				RGB: colorful.Color{R: 0, G: 0, B: 1}, HasColor: true},
			"red": {X: 400.6, Y: 600.6, Mass: parameter.AttractorMass, Tag: 3, Name: "red",
				RGB: colorful.Color{R: 1, G: 0, B: 0}, HasColor: true},
		},
		Field: map[string]*FieldConfig{
			"grid": {
				XMin: 0, XMax: parameter.DefaultFieldWidth,
				YMin: 0, YMax: parameter.DefaultFieldHeight,
				Spacing: parameter.DefaultFieldSpacing,
				Mass:    parameter.SpawnMass,
			},
		},
	}
}
