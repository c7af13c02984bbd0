package types

import (
	"time"

	Log "GLTutorial/logging"
)

type Profiler struct {
	ID        string
	StartTime time.Time
}

func ProfilerStart(id string) Profiler {

	return Profiler{
		ID:        id,
		StartTime: time.Now(),
	}

}

// End reports how long the profiled step took and logs it at debug level.
func (p Profiler) End() time.Duration {

	took := time.Since(p.StartTime)

	Log.Logger().Debug("profile", "id", p.ID, "took", took)

	return took

}
