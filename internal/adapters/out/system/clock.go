package system

import (
	"time"

	"proofparcel/internal/core/ports"
)

// UTCClock is the wall clock truncated to whole seconds.
type UTCClock struct{}

var _ ports.Clock = UTCClock{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
