package chopper

import (
	"math"
	"time"
)

// Metrics reports timing and shape information for one Chop call, per
// spec.md §4.8. TimeSCC is nil on the ≤2-important-node path, where
// the SCC condenser never runs.
type Metrics struct {
	MaxNumberOfParts int
	PartsBeforeMerge int
	PartsAfterMerge  int
	TimeSCC          *float64
	TimeCutting      float64
	TimeMerging      float64
}

// seconds rounds a duration to two decimal places of wall-clock
// seconds, the precision spec.md §4.8 reports metrics at.
func seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
