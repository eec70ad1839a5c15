// Package obstacle defines the immutable circular-obstacle value type
// shared by the clearance field and the map-file loader.
//
// An Obstacle is just a center cell and a positive radius; bounds
// checking against a particular grid is the caller's (clearance.ClearanceMap's)
// responsibility, since an Obstacle carries no reference to any grid.
package obstacle
