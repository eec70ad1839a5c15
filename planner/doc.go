// Package planner implements the clearance-weighted best-first path
// search (component C2 of clearway): a single-pass search over a
// clearance.ClearanceMap with a tunable objective mixing clearance and
// goal proximity, producing a path and, optionally, a down-sampled trace
// of the search frontier.
//
// # Objective
//
// For a candidate cell c, with s_max = max(rows,cols)/2 and
// d_max = hypot(rows,cols):
//
//	s(c) = ValAt(c) / s_max
//	h(c) = euclid(c, target) / d_max
//	Score(c) = lambda*s(c) - (1-lambda)*log(h(c) + 0.01)
//
// The frontier is a max-priority queue on Score; lambda=1 is pure
// clearance maximization, lambda=0 is greedy goal-seeking.
//
// # State machine
//
// A Planner moves Idle -> Validating -> Searching -> (Done | Unreachable
// | Failed). Any validation error leaves it in Failed with the caller's
// inputs unchanged; Searching ends in Done when the target is popped, or
// Unreachable when the frontier drains first.
//
// Complexity: O(rows·cols·log(rows·cols)) worst case. Each cell is
// visited at most once — there is no re-opening on an improved score, so
// the search is greedy, not admissibly optimal.
//
// # Errors
//
//	ErrOutOfBounds    - start or target outside the map.
//	ErrDoesNotFit     - map.ValAt(start) < robot radius.
//	ErrInvalidLambda  - lambda not in [0, 1].
//	ErrUnreachable    - no path satisfies the fit constraint (a normal result, not a failure).
package planner
