// Package geom provides the integer grid-cell primitives shared by the
// clearance field and the planner: coordinates, 8-neighborhood expansion,
// and the distance metrics the rest of clearway builds on.
//
// Complexity:
//
//   - Neighbors8: O(1) (at most 8 results).
//   - Euclid/Adjacent8: O(1).
package geom
