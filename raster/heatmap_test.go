package raster

import (
	"testing"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
)

func TestHeatmapPaintsObstacleStartAndTarget(t *testing.T) {
	field, err := clearance.New(10, 10)
	if err != nil {
		t.Fatalf("clearance.New: %v", err)
	}
	o, err := obstacle.New(geom.Cell{X: 5, Y: 5}, 1)
	if err != nil {
		t.Fatalf("obstacle.New: %v", err)
	}
	if _, ok := field.Insert(o); !ok {
		t.Fatal("Insert rejected a valid obstacle")
	}

	start := geom.Cell{X: 0, Y: 0}
	target := geom.Cell{X: 9, Y: 9}
	trail := []geom.Cell{start, {X: 1, Y: 1}}

	g := Heatmap(field, start, target, 0.5, trail)
	if g.Rows() != 10 || g.Cols() != 10 {
		t.Fatalf("Heatmap dims = %d,%d; want 10,10", g.Rows(), g.Cols())
	}

	if got := g.At(5, 5); got != colorObstacle {
		t.Errorf("obstacle center color = %+v; want %+v", got, colorObstacle)
	}
	if got := g.At(target.X, target.Y); got != colorTarget {
		t.Errorf("target color = %+v; want %+v", got, colorTarget)
	}
	// start is overwritten last by the start disc, so it wins over the trail color.
	if got := g.At(start.X, start.Y); got != colorStart {
		t.Errorf("start color = %+v; want %+v", got, colorStart)
	}
}
