package retention

import (
	"time"

	"fotostudio/internal/infra"
)

// Janitor dispatches background cleanup runs after successful generations.
// The dispatch never blocks the caller and its outcome is only logged; a
// cleanup failure must not affect an already-returned generation result.
type Janitor struct {
	dir         string
	maxAgeHours float64
	logger      infra.Logger
}

// NewJanitor configures a janitor for the given output directory.
func NewJanitor(dir string, maxAgeHours float64, logger infra.Logger) *Janitor {
	if maxAgeHours <= 0 {
		maxAgeHours = DefaultMaxAgeHours
	}
	return &Janitor{dir: dir, maxAgeHours: maxAgeHours, logger: logger}
}

// Kick starts one cleanup run on its own goroutine and returns immediately.
func (j *Janitor) Kick() {
	if j == nil {
		return
	}
	go func() {
		result := Run(j.dir, Config{MaxAgeHours: j.maxAgeHours}, time.Now())
		evt := j.logger.Debug()
		if len(result.Errors) > 0 {
			evt = j.logger.Warn().Strs("errors", result.Errors)
		}
		evt.Int("deleted", result.TotalDeleted).
			Int64("bytes_freed", result.TotalSize).
			Msg("retention: background cleanup finished")
	}()
}
