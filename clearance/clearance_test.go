package clearance

import (
	"math"
	"testing"

	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
)

func mustObstacle(t *testing.T, x, y int, r float64) obstacle.Obstacle {
	t.Helper()
	o, err := obstacle.New(geom.Cell{X: x, Y: y}, r)
	if err != nil {
		t.Fatalf("obstacle.New(%d,%d,%v): %v", x, y, r, err)
	}

	return o
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{{0, 5}, {5, 0}, {-1, 5}}
	for _, tc := range cases {
		if _, err := New(tc.rows, tc.cols); err != ErrInvalidDimension {
			t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimension", tc.rows, tc.cols, err)
		}
	}
}

func TestEmptyMapIsEdgeClearanceEverywhere(t *testing.T) {
	m, err := New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			want := EdgeClearance(10, 10, i, j)
			got := m.ValAt(geom.Cell{X: i, Y: j})
			if got != want {
				t.Errorf("ValAt(%d,%d) = %v; want %v", i, j, got, want)
			}
		}
	}
}

func TestValAtOutOfBounds(t *testing.T) {
	m, _ := New(5, 5)
	cases := []geom.Cell{{-1, 0}, {0, -1}, {5, 0}, {0, 5}}
	for _, c := range cases {
		if got := m.ValAt(c); got != Invalid {
			t.Errorf("ValAt(%v) = %v; want Invalid", c, got)
		}
	}
}

func TestInsertRejectsOutOfBoundsOrNonPositiveRadius(t *testing.T) {
	m, _ := New(5, 5)
	cases := []obstacle.Obstacle{
		{Center: geom.Cell{X: 10, Y: 10}, Radius: 1},
		{Center: geom.Cell{X: -1, Y: 0}, Radius: 1},
		{Center: geom.Cell{X: 0, Y: 0}, Radius: 0},
		{Center: geom.Cell{X: 0, Y: 0}, Radius: -2},
	}
	for _, o := range cases {
		if h, ok := m.Insert(o); ok || h != nil {
			t.Errorf("Insert(%+v) = (%v, %v); want (nil, false)", o, h, ok)
		}
	}
	if got := len(m.Obstacles()); got != 0 {
		t.Errorf("Obstacles() len = %d; want 0 after rejected inserts", got)
	}
}

// TestSingleObstacleRim is scenario S2 from spec §8: a single obstacle of
// radius 3 at (10,10) in a 20x20 map. val_at(10,10) = 0 (inside disc),
// val_at(10,13) = 0 (on the rim), val_at(10,14) ~= 1 (one past the rim).
func TestSingleObstacleRim(t *testing.T) {
	m, err := New(20, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	o := mustObstacle(t, 10, 10, 3.0)
	if _, ok := m.Insert(o); !ok {
		t.Fatal("Insert should have succeeded")
	}

	if got := m.ValAt(geom.Cell{X: 10, Y: 10}); got != 0 {
		t.Errorf("ValAt(center) = %v; want 0", got)
	}
	if got := m.ValAt(geom.Cell{X: 10, Y: 13}); got != 0 {
		t.Errorf("ValAt(rim) = %v; want 0", got)
	}
	if got := m.ValAt(geom.Cell{X: 10, Y: 14}); math.Abs(got-1) > 1e-9 {
		t.Errorf("ValAt(rim+1) = %v; want ~1", got)
	}
}

// TestRemoveRestoresClearance is scenario S3 from spec §8: insert then
// remove restores val_at everywhere to edge clearance.
func TestRemoveRestoresClearance(t *testing.T) {
	m, err := New(15, 15)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := m.Snapshot()

	o := mustObstacle(t, 5, 5, 2.0)
	h, ok := m.Insert(o)
	if !ok {
		t.Fatal("Insert should have succeeded")
	}

	// Sanity: insert actually changed something nearby.
	if got := m.ValAt(geom.Cell{X: 5, Y: 5}); got != 0 {
		t.Errorf("ValAt(center) after insert = %v; want 0", got)
	}

	if ok := m.Remove(h); !ok {
		t.Fatal("Remove should have succeeded")
	}

	after := m.Snapshot()
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Errorf("ValAt(%d,%d) after round-trip = %v; want %v", i, j, after[i][j], before[i][j])
			}
		}
	}
}

func TestRemoveAbsentObstacleReturnsFalse(t *testing.T) {
	m, _ := New(5, 5)
	o := mustObstacle(t, 1, 1, 1.0)
	h := &o // never inserted, so this pointer is not a live handle
	if got := m.Remove(h); got {
		t.Error("Remove(absent) = true; want false")
	}
}

func TestClearRestoresEdgeClearanceEverywhere(t *testing.T) {
	m, err := New(8, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, _ = m.Insert(mustObstacle(t, 3, 3, 2.0))
	_, _ = m.Insert(mustObstacle(t, 5, 5, 1.5))

	m.Clear()

	if got := len(m.Obstacles()); got != 0 {
		t.Errorf("Obstacles() len after Clear = %d; want 0", got)
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := EdgeClearance(8, 8, i, j)
			if got := m.ValAt(geom.Cell{X: i, Y: j}); got != want {
				t.Errorf("ValAt(%d,%d) after Clear = %v; want %v", i, j, got, want)
			}
		}
	}
}

func TestCoincidentObstaclesBothContributeIndependently(t *testing.T) {
	m, err := New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h1, _ := m.Insert(mustObstacle(t, 4, 4, 1.0))
	h2, _ := m.Insert(mustObstacle(t, 4, 4, 1.0))
	if h1 == h2 {
		t.Fatal("two inserts of equal-valued obstacles returned the same handle")
	}
	if got := len(m.Obstacles()); got != 2 {
		t.Errorf("Obstacles() len = %d; want 2", got)
	}

	// Removing one leaves the other still in effect near the center.
	m.Remove(h1)
	if got := m.ValAt(geom.Cell{X: 4, Y: 4}); got != 0 {
		t.Errorf("ValAt(center) after removing one of two coincident obstacles = %v; want 0", got)
	}
}

func TestOneByOneMap(t *testing.T) {
	m, err := New(1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.ValAt(geom.Cell{X: 0, Y: 0}); got != 0 {
		t.Errorf("ValAt(0,0) on 1x1 empty map = %v; want 0", got)
	}
	_, _ = m.Insert(mustObstacle(t, 0, 0, 1.0))
	if got := m.ValAt(geom.Cell{X: 0, Y: 0}); got != 0 {
		t.Errorf("ValAt(0,0) on 1x1 map with obstacle at origin = %v; want 0", got)
	}
}

func TestMonotoneUnderInsertAndRemove(t *testing.T) {
	m, err := New(12, 12)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := m.Snapshot()
	h, _ := m.Insert(mustObstacle(t, 6, 6, 3.0))
	afterInsert := m.Snapshot()
	for i := range before {
		for j := range before[i] {
			if afterInsert[i][j] > before[i][j] {
				t.Fatalf("ValAt(%d,%d) increased after insert: %v -> %v", i, j, before[i][j], afterInsert[i][j])
			}
		}
	}

	m.Remove(h)
	afterRemove := m.Snapshot()
	for i := range afterInsert {
		for j := range afterInsert[i] {
			if afterRemove[i][j] < afterInsert[i][j] {
				t.Fatalf("ValAt(%d,%d) decreased after remove: %v -> %v", i, j, afterInsert[i][j], afterRemove[i][j])
			}
		}
	}
}
