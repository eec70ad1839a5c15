package raster

import (
	"image/color"
	"math"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
)

// Color scheme recovered from the original program's heat-map display
// mode (obstacles, start, and target each got a fixed color; the
// clearance field itself modulated a single channel).
var (
	colorObstacle = color.NRGBA{R: 220, A: 255}
	colorStart    = color.NRGBA{R: 255, G: 165, A: 255}
	colorTarget   = color.NRGBA{R: 128, B: 128, A: 255}
	colorTrail    = color.NRGBA{B: 220, A: 255}
)

// Heatmap renders a Grid frame from a clearance map's current state: the
// clearance field as a green-channel heat map, obstacles as filled discs,
// start/target as filled discs of their own color, and trail as the
// search cells visited so far. robotRadius sizes the start/target discs.
func Heatmap(m *clearance.ClearanceMap, start, target geom.Cell, robotRadius float64, trail []geom.Cell) *Grid {
	rows, cols := m.Rows(), m.Cols()
	g := NewGrid(rows, cols)

	maxDist := float64(maxInt(rows/2, cols/2))
	if maxDist <= 0 {
		maxDist = 1
	}
	snap := m.Snapshot()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := snap[i][j]
			level := math.Min(255, 255*v/maxDist)
			g.Set(i, j, color.NRGBA{G: uint8(level), A: 255})
		}
	}

	for _, c := range trail {
		g.Set(c.X, c.Y, colorTrail)
	}

	for _, o := range m.Obstacles() {
		drawDisc(g, o.Center, o.Radius, colorObstacle)
	}

	drawDisc(g, start, robotRadius, colorStart)
	drawDisc(g, target, robotRadius, colorTarget)

	return g
}

func drawDisc(g *Grid, center geom.Cell, radius float64, c color.NRGBA) {
	if radius <= 0 {
		radius = 0.5
	}
	r := int(math.Ceil(radius))
	for di := -r; di <= r; di++ {
		for dj := -r; dj <= r; dj++ {
			i, j := center.X+di, center.Y+dj
			if i < 0 || i >= g.Rows() || j < 0 || j >= g.Cols() {
				continue
			}
			if float64(di*di+dj*dj) > radius*radius {
				continue
			}
			g.Set(i, j, c)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
