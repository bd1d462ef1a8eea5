// Package timing measures how long a processing step took and renders
// the duration for log output.
package timing

import (
	"fmt"
	"time"
)

// Stopwatch marks a start time and reports the elapsed duration.
type Stopwatch struct {
	start time.Time
}

// Start begins a new measurement.
func Start() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the time since Start.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Format renders a duration as HH:MM:SS for log lines.
func Format(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
