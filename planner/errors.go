package planner

import "errors"

var (
	// ErrOutOfBounds indicates start or target lies outside the map.
	ErrOutOfBounds = errors.New("planner: cell is outside the map")
	// ErrDoesNotFit indicates the robot cannot fit at the requested start.
	ErrDoesNotFit = errors.New("planner: start clearance is below robot radius")
	// ErrInvalidLambda indicates lambda is outside [0, 1].
	ErrInvalidLambda = errors.New("planner: lambda must be in [0, 1]")
	// ErrUnreachable indicates the search exhausted its frontier without
	// reaching target under the fit constraint. This is a normal plan
	// outcome, not a library failure.
	ErrUnreachable = errors.New("planner: no path satisfies the fit constraint")
)
