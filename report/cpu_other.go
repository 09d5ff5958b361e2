//go:build !unix

package report

import "time"

// CPUTime is unavailable on this platform
func CPUTime() time.Duration {
	return 0
}
