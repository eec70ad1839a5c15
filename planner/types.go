package planner

import (
	"time"

	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/raster"
)

// State is a Planner's position in its Idle -> Validating -> Searching ->
// (Done | Unreachable | Failed) state machine.
type State int

const (
	Idle State = iota
	Validating
	Searching
	Done
	Unreachable
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Searching:
		return "Searching"
	case Done:
		return "Done"
	case Unreachable:
		return "Unreachable"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Options configures a single Plan call. The zero value is invalid for
// Lambda (0 is a valid value, but leaving Options entirely unset is not a
// documented configuration) — use DefaultOptions as a starting point.
type Options struct {
	// Lambda blends clearance maximization (1) against goal-seeking (0).
	Lambda float64
	// RobotRadius is the minimum clearance required at every path cell.
	RobotRadius float64
	// Trace, if non-nil, receives down-sampled search-frontier frames.
	Trace raster.FrameSink
	// TraceEvery overrides the auto down-sample rate (0 = target ~100
	// frames regardless of search length, per spec).
	TraceEvery int
}

// DefaultOptions returns an Options with Lambda=0.5, RobotRadius=0.5, and
// tracing disabled.
func DefaultOptions() Options {
	return Options{Lambda: 0.5, RobotRadius: 0.5}
}

// Path is an ordered sequence of 8-adjacent cells from start to target.
type Path []geom.Cell

// Result is the outcome of a successful Plan call.
type Result struct {
	Path    Path
	Elapsed time.Duration
	// NodesExpanded is the number of cells popped from the frontier.
	NodesExpanded int
}
