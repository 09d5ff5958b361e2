package report

import (
	"fmt"
	"log"
	"sort"

	"github.com/lixenwraith/gravwell/core"
	"github.com/lixenwraith/gravwell/engine"
	plt "github.com/phil-mansfield/pyplot"
)

// Series is one scatter layer of the trace plot
type Series struct {
	Xs, Ys []float64
	Color  string
	Label  string
}

// TraceSeries groups a snapshot into plot layers: one per capturing tag, then mobile particles, then attractors
// colorOf returns a hex colour for a tag
func TraceSeries(snap engine.Snapshot, colorOf func(core.Tag) string) []Series {
	byTag := make(map[core.Tag]*Series)
	for i := range snap.Pinned {
		p := &snap.Pinned[i]
		s, ok := byTag[p.Tag]
		if !ok {
			s = &Series{Color: colorOf(p.Tag), Label: fmt.Sprintf("tag %d", p.Tag)}
			byTag[p.Tag] = s
		}
		s.Xs = append(s.Xs, p.Position.X)
		s.Ys = append(s.Ys, p.Position.Y)
	}

	tags := make([]core.Tag, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	out := make([]Series, 0, len(tags)+2)
	for _, tag := range tags {
		out = append(out, *byTag[tag])
	}

	if len(snap.Mobile) > 0 {
		mobile := Series{Color: "#808080", Label: "mobile"}
		for i := range snap.Mobile {
			mobile.Xs = append(mobile.Xs, snap.Mobile[i].Position.X)
			mobile.Ys = append(mobile.Ys, snap.Mobile[i].Position.Y)
		}
		out = append(out, mobile)
	}

	if len(snap.Attractors) > 0 {
		attractors := Series{Color: "#000000", Label: "attractors"}
		for i := range snap.Attractors {
			attractors.Xs = append(attractors.Xs, snap.Attractors[i].Position.X)
			attractors.Ys = append(attractors.Ys, snap.Attractors[i].Position.Y)
		}
		out = append(out, attractors)
	}
	return out
}

// PlotTraces writes a matplotlib figure of the series to fname
// Requires python with matplotlib on PATH
func PlotTraces(series []Series, fname string) {
	plt.Figure(plt.FigSize(8, 8))
	for _, s := range series {
		marker := ","
		if s.Label == "attractors" {
			marker = "*"
		}
		plt.Plot(s.Xs, s.Ys, marker, plt.C(s.Color))
	}
	plt.Title("Trace archive by capturing attractor")
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.SaveFig(fname)
	plt.Execute()
	log.Printf("report: trace plot written to %s", fname)
}
