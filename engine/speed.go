package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gravwell/parameter"
)

// SpeedMode selects how many sub-steps run per rendered frame
type SpeedMode uint8

const (
	SpeedPaused SpeedMode = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedWarp
	speedModeCount
)

var speedModeNames = [speedModeCount]string{
	SpeedPaused: "paused",
	SpeedSlow:   "slow",
	SpeedNormal: "normal",
	SpeedFast:   "fast",
	SpeedWarp:   "warp",
}

var speedModeSubSteps = [speedModeCount]uint{
	SpeedPaused: parameter.SpeedPausedSubSteps,
	SpeedSlow:   parameter.SpeedSlowSubSteps,
	SpeedNormal: parameter.SpeedNormalSubSteps,
	SpeedFast:   parameter.SpeedFastSubSteps,
	SpeedWarp:   parameter.SpeedWarpSubSteps,
}

// SubSteps returns the sub-steps per frame for the mode
func (m SpeedMode) SubSteps() uint {
	if m >= speedModeCount {
		return 0
	}
	return speedModeSubSteps[m]
}

func (m SpeedMode) String() string {
	if m >= speedModeCount {
		return fmt.Sprintf("speed(%d)", uint8(m))
	}
	return speedModeNames[m]
}

// Faster returns the next faster mode, saturating at SpeedWarp
func (m SpeedMode) Faster() SpeedMode {
	if m+1 >= speedModeCount {
		return SpeedWarp
	}
	return m + 1
}

// Slower returns the next slower mode, saturating at SpeedPaused
func (m SpeedMode) Slower() SpeedMode {
	if m == SpeedPaused || m >= speedModeCount {
		return SpeedPaused
	}
	return m - 1
}

// ParseSpeedMode accepts a mode name, case-insensitive
func ParseSpeedMode(s string) (SpeedMode, error) {
	for i, name := range speedModeNames {
		if strings.EqualFold(s, name) {
			return SpeedMode(i), nil
		}
	}
	return SpeedPaused, fmt.Errorf("unknown speed mode %q, want one of %s", s, strings.Join(speedModeNames[:], ", "))
}
