package obstacle

import (
	"errors"

	"github.com/katalvlaran/clearway/geom"
)

// ErrNonPositiveRadius indicates an obstacle was constructed with radius <= 0.
var ErrNonPositiveRadius = errors.New("obstacle: radius must be > 0")

// Obstacle is an immutable circular obstacle: a center cell and a real radius.
type Obstacle struct {
	Center geom.Cell
	Radius float64
}

// New validates radius and returns an Obstacle. It does not check the
// center against any grid; clearance.ClearanceMap.Insert does that, since
// bounds are a property of a particular map, not of the obstacle itself.
func New(center geom.Cell, radius float64) (Obstacle, error) {
	if radius <= 0 {
		return Obstacle{}, ErrNonPositiveRadius
	}

	return Obstacle{Center: center, Radius: radius}, nil
}

// DistanceToCell returns max(0, euclid(c, o.Center) - o.Radius), the
// distance from c to the obstacle's boundary (0 if c is inside the disc).
func (o Obstacle) DistanceToCell(c geom.Cell) float64 {
	d := geom.Euclid(c, o.Center) - o.Radius
	if d < 0 {
		return 0
	}

	return d
}
