// Package clearance implements the clearance field with incremental
// maintenance (component C1 of clearway): for every cell in a rectangular
// grid it tracks the minimum distance to the nearest obstacle boundary or
// map edge, updated incrementally as obstacles are inserted and removed.
//
// # Algorithm
//
// Each cell owns a min-priority queue (a lazily-allocated container/heap)
// of (distance, obstacle) entries. Inserting an obstacle floods outward
// from its center in the 8-neighborhood, stopping the flood along any
// branch once the obstacle's distance to a cell exceeds that cell's edge
// clearance — beyond that radius the obstacle can never be the binding
// constraint, so there is nothing to record and nothing further to visit.
// Removing an obstacle re-floods the same region and lazily pops any
// heap top whose obstacle is no longer present; interior stale entries
// are left untouched until they would otherwise surface.
//
// Complexity: Insert/Remove are O(influence-disk-area · log(entries at
// cell)) amortized; ValAt is O(1) amortized (occasional stale pops).
// Memory: O(rows·cols) for the per-cell heap array plus O(sum of
// influence-disk areas) for heap entries.
//
// # Errors
//
//	ErrInvalidDimension - rows < 1 or cols < 1 at construction.
package clearance
