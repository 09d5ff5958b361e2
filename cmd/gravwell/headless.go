package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/report"
	"github.com/lixenwraith/gravwell/scenario"
)

// runHeadless steps the scenario for a fixed number of frames and writes a summary to w
func runHeadless(cfg *config, frames int, plotPath string, w io.Writer) error {
	if frames <= 0 {
		return fmt.Errorf("-frames must be positive, got %d", frames)
	}

	speed := cfg.speed
	if speed.SubSteps() == 0 {
		log.Printf("headless: speed %s would never step, using %s", speed, engine.SpeedNormal)
		speed = engine.SpeedNormal
	}

	sim := engine.NewSimulation(cfg.workers, nil)
	sim.Seed(cfg.world.Attractors, cfg.world.Particles)
	log.Printf("headless: %d frames at %d sub-steps, %d workers", frames, speed.SubSteps(), sim.Workers())

	rec := report.NewRecorder()
	for frame := 1; frame <= frames; frame++ {
		rec.Record(sim.Step(speed.SubSteps(), cfg.resolution))
		if frame%parameter.HeadlessLogEvery == 0 {
			mobile, pinned := sim.Counts()
			log.Printf("headless: frame %d, %d mobile, %d pinned", frame, mobile, pinned)
		}
	}

	if err := rec.Summarize(sim).Write(w); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if plotPath != "" {
		colors := cfg.world.Colors
		series := report.TraceSeries(sim.Snapshot(), func(tag core.Tag) string {
			if c, ok := colors[tag]; ok {
				return c.Hex()
			}
			return scenario.HueColor(tag).Hex()
		})
		report.PlotTraces(series, plotPath)
	}
	return nil
}
