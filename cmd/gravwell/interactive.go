package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/audio"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/modes"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/render"
	"github.com/lixenwraith/gravwell/status"
)

// runInteractive drives the terminal front end until the user quits
func runInteractive(cfg *config, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	activeScreen = screen
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager()
	sound.SetMuted(mute)
	if !mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the simulator runs without sound
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	stats := status.NewRegistry()
	sim := engine.NewSimulation(cfg.workers, stats)
	camera := render.NewCamera()
	renderer := render.NewTerminalRenderer(screen, camera, render.NewPalette(cfg.world.Colors), stats)
	session := modes.NewSession(sim, cfg.world, camera, renderer, sound, cfg.resolution, cfg.speed)
	input := modes.NewInputHandler(session)
	log.Printf("gravwell: interactive with %d workers", sim.Workers())

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER CRASHED", r)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	session.Tick()
	for {
		select {
		case ev := <-eventChan:
			if !input.HandleEvent(ev) {
				log.Printf("gravwell: quit after %d frames", stats.Ints.Get(status.KeyFrames).Load())
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-frameTicker.C:
			session.Tick()
		}
	}
}
