package parameter

// Sub-steps per rendered frame for each speed mode
// Simulated time per frame is sub-steps / DefaultResolution
const (
	SpeedPausedSubSteps = 0
	SpeedSlowSubSteps   = 1
	SpeedNormalSubSteps = 10
	SpeedFastSubSteps   = 100
	SpeedWarpSubSteps   = 1000
)
