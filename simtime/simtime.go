// Package simtime defines the simulated clock used throughout pyRoute13.
//
// Simulated time is integer-valued and monotonic; there is no wall-clock
// pacing. MinTime/MaxTime stand in for the "no plan yet" / "never expires"
// sentinels the planner and dispatcher need.
package simtime

import "math"

// SimTime is a non-decreasing integer simulation timestamp, measured in
// seconds unless a scenario's estimators define otherwise.
type SimTime int64

// Second, Minute, Hour and Day are convenience durations for building
// scenario schedules, mirroring the original route13.core.time constants.
const (
	Second SimTime = 1
	Minute         = 60 * Second
	Hour           = 60 * Minute
	Day            = 24 * Hour
)

// MinTime and MaxTime are the -∞/+∞ sentinels the engine needs: MinTime
// marks "no plan published yet", MaxTime marks "never expires".
const (
	MinTime SimTime = math.MinInt64
	MaxTime SimTime = math.MaxInt64
)

// At builds a SimTime from an hour/minute/second offset, mirroring
// route13.core.time.time(hour, minute, seconds).
func At(hour, minute, seconds int) SimTime {
	return SimTime(hour)*Hour + SimTime(minute)*Minute + SimTime(seconds)*Second
}
