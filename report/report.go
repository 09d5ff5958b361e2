package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
)

// Recorder accumulates per-frame step statistics for the headless summary
type Recorder struct {
	captures  []float64
	subSteps  int
	captured  int
	stepTime  time.Duration
	startWall time.Time
	startCPU  time.Duration
}

// NewRecorder starts a recording at the current wall and CPU time
func NewRecorder() *Recorder {
	return &Recorder{
		startWall: time.Now(),
		startCPU:  CPUTime(),
	}
}

// Record adds one frame
func (r *Recorder) Record(stats engine.StepStats) {
	r.captures = append(r.captures, float64(stats.Captured))
	r.subSteps += stats.SubSteps
	r.captured += stats.Captured
	r.stepTime += stats.Elapsed
}

// Frames returns the number of recorded frames
func (r *Recorder) Frames() int {
	return len(r.captures)
}

// Summary is the end-of-run report
type Summary struct {
	Frames     int
	SubSteps   int
	Captured   int
	Mobile     int
	Pinned     int
	Attractors int
	Workers    int
	ByTag      map[core.Tag]int

	Wall     time.Duration
	CPU      time.Duration
	StepTime time.Duration

	// Captures holds the per-frame capture counts
	Captures []float64
}

// Summarize closes the recording against the final simulation state
func (r *Recorder) Summarize(sim *engine.Simulation) Summary {
	mobile, pinned := sim.Counts()
	return Summary{
		Frames:     len(r.captures),
		SubSteps:   r.subSteps,
		Captured:   r.captured,
		Mobile:     mobile,
		Pinned:     pinned,
		Attractors: len(sim.Snapshot().Attractors),
		Workers:    sim.Workers(),
		ByTag:      sim.CapturesByTag(),
		Wall:       time.Since(r.startWall),
		CPU:        CPUTime() - r.startCPU,
		StepTime:   r.stepTime,
		Captures:   r.captures,
	}
}

// Write prints the summary and a captures-per-frame chart
func (s Summary) Write(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "frames      %d (%d sub-steps, %d workers)\n", s.Frames, s.SubSteps, s.Workers)
	fmt.Fprintf(&b, "particles   %d mobile, %d pinned, %d attractors\n", s.Mobile, s.Pinned, s.Attractors)
	fmt.Fprintf(&b, "captured    %d this run\n", s.Captured)

	tags := make([]core.Tag, 0, len(s.ByTag))
	for tag := range s.ByTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	for _, tag := range tags {
		fmt.Fprintf(&b, "  tag %-3d   %d traces\n", tag, s.ByTag[tag])
	}

	fmt.Fprintf(&b, "wall        %s\n", s.Wall.Round(time.Millisecond))
	fmt.Fprintf(&b, "step        %s", s.StepTime.Round(time.Microsecond))
	if s.Frames > 0 {
		fmt.Fprintf(&b, " (%s/frame)", (s.StepTime / time.Duration(s.Frames)).Round(time.Microsecond))
	}
	b.WriteString("\n")
	if s.CPU > 0 {
		fmt.Fprintf(&b, "cpu         %s\n", s.CPU.Round(time.Millisecond))
	}

	if chart := Chart(s.Captures); chart != "" {
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Chart renders captures per frame as an ascii line chart, empty when there is nothing to draw
func Chart(captures []float64) string {
	if len(captures) < 2 {
		return ""
	}
	return asciigraph.Plot(captures,
		asciigraph.Height(parameter.HeadlessChartHeight),
		asciigraph.Width(parameter.HeadlessChartWidth),
		asciigraph.Caption("captures per frame"),
	)
}
