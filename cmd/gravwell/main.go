package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/scenario"
	"golang.org/x/term"
)

var (
	scenarioFlag = flag.String("scenario", "", "Scenario file (gcfg syntax); the built-in scenario when empty")
	seedsFlag    = flag.String("seeds", "", "Extra particle table with columns x y vx vy mass")
	speedFlag    = flag.String("speed", "", "Initial speed: paused, slow, normal, fast, warp")
	workersFlag  = flag.Int("workers", 0, "Step workers; 0 uses the scenario value or every CPU")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal UI and print a summary")
	framesFlag   = flag.Int("frames", parameter.HeadlessDefaultFrames, "Frames to run in headless mode")
	plotFlag     = flag.String("plot", "", "Headless: write a matplotlib trace plot to this file")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/gravwell.log")
	exampleFlag  = flag.Bool("example", false, "Print an example scenario file and exit")
)

// activeScreen is finalized by the crash handler so the terminal is usable afterwards
var activeScreen tcell.Screen

func main() {
	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			crash("GRAVWELL CRASHED", r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *exampleFlag {
		fmt.Print(scenario.ExampleScenarioFile)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gravwell: %v\n", err)
		log.Printf("gravwell: %v", err)
		os.Exit(1)
	}
}

// config is the resolved run configuration
type config struct {
	world      *scenario.World
	resolution uint
	speed      engine.SpeedMode
	workers    int
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	headless := *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		return runHeadless(cfg, *framesFlag, *plotFlag, os.Stdout)
	}
	return runInteractive(cfg, *muteFlag)
}

// loadConfig reads the scenario and applies command-line overrides
func loadConfig() (*config, error) {
	sc := scenario.Default()
	if *scenarioFlag != "" {
		loaded, err := scenario.Load(*scenarioFlag)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	if *seedsFlag != "" {
		sc.AddSeeds(*seedsFlag)
	}

	cfg := &config{
		resolution: uint(sc.Simulation.Resolution),
		speed:      sc.Simulation.SpeedMode,
		workers:    sc.Simulation.Workers,
	}
	if cfg.resolution == 0 {
		cfg.resolution = parameter.DefaultResolution
	}

	if *speedFlag != "" {
		mode, err := engine.ParseSpeedMode(*speedFlag)
		if err != nil {
			return nil, fmt.Errorf("-speed: %w", err)
		}
		cfg.speed = mode
	}
	if *workersFlag != 0 {
		cfg.workers = *workersFlag
	}

	world, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("build scenario: %w", err)
	}
	cfg.world = world
	log.Printf("gravwell: %d attractors, %d particles, resolution %d, speed %s",
		len(world.Attractors), len(world.Particles), cfg.resolution, cfg.speed)
	return cfg, nil
}

// crash restores the terminal and prints the panic with its stack
func crash(what string, r any) {
	if activeScreen != nil {
		activeScreen.Fini()
	}
	// \r\n keeps the output readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
