// Package baseline computes an exact shortest path through a clearance
// field's passable cells, for use as a verification/comparison point
// against planner's greedy, single-pass search. Where planner trades
// optimality for a single forward pass over a blended score, baseline
// answers "what is the actual shortest 8-adjacency path that keeps
// clearance >= robot_radius everywhere", via an ordinary Dijkstra search
// over geom.Cell directly — the same container/heap-backed priority
// queue idiom clearance and planner already use, with ascending
// distance order instead of clearance's lazy-deletion min-heap or
// planner's blended-score max-heap.
//
// This is deliberately not part of the planner's hot path: it exists for
// clearwaybench to report how far the greedy planner's path length
// strays from optimal, not as a faster or more scalable alternative.
package baseline
