package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events between frames
	EventQueueSize = 256
)

// Step scheduler
const (
	// ParallelThreshold is the working set size below which a sub-step runs on the calling goroutine
	ParallelThreshold = 2048

	// MinChunkSize is the smallest per-worker slice of the working set
	MinChunkSize = 512
)

// Headless runs
const (
	// HeadlessDefaultFrames is the frame count when -frames is not given
	HeadlessDefaultFrames = 600

	// HeadlessLogEvery logs progress every N frames
	HeadlessLogEvery = 100

	// HeadlessChartWidth caps the captures-per-frame chart width in columns
	HeadlessChartWidth = 72

	// HeadlessChartHeight is the chart height in rows
	HeadlessChartHeight = 10
)
