package clearance

import (
	"container/heap"

	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
)

// ClearanceMap is the triple (rows, cols, obstacles, heaps) of spec §3: a
// fixed-size grid tracking, per cell, the minimum distance to the nearest
// obstacle boundary or map edge. The zero value is not usable; build one
// with New.
type ClearanceMap struct {
	rows, cols int
	obstacles  map[*obstacle.Obstacle]struct{}
	heaps      []cellHeap // len == rows*cols, lazily populated per cell
}

// New constructs an empty ClearanceMap of the given dimensions. It fails
// with ErrInvalidDimension if rows < 1 or cols < 1.
func New(rows, cols int) (*ClearanceMap, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimension
	}

	return &ClearanceMap{
		rows:      rows,
		cols:      cols,
		obstacles: make(map[*obstacle.Obstacle]struct{}),
		heaps:     make([]cellHeap, rows*cols),
	}, nil
}

// Rows returns the map's row count.
func (m *ClearanceMap) Rows() int { return m.rows }

// Cols returns the map's column count.
func (m *ClearanceMap) Cols() int { return m.cols }

// EdgeClearance returns the per-axis edge distance for (i,j): the maximum
// clearance any cell can attain when no obstacle is nearby (spec §3
// "EdgeDistance").
func EdgeClearance(rows, cols, i, j int) float64 {
	vert := min2(i, rows-1-i)
	hor := min2(j, cols-1-j)

	return float64(min2(vert, hor))
}

func min2(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func (m *ClearanceMap) index(c geom.Cell) int {
	return c.X*m.cols + c.Y
}

// Insert admits o into the map if its center is in bounds and its radius
// is positive. On success it returns a stable handle (used by Remove) and
// true; on soft failure it returns (nil, false) and leaves the map
// unchanged.
func (m *ClearanceMap) Insert(o obstacle.Obstacle) (*obstacle.Obstacle, bool) {
	if !o.Center.InBounds(m.rows, m.cols) || o.Radius <= 0 {
		return nil, false
	}

	h := new(obstacle.Obstacle)
	*h = o
	m.obstacles[h] = struct{}{}

	m.flood(h, func(idx int, d float64) {
		heap.Push(&m.heaps[idx], entry{dist: d, obs: h})
	})

	return h, true
}

// Remove erases h from the obstacle set and lazily invalidates any heap
// entries its flood had reached. Returns false if h is not present.
func (m *ClearanceMap) Remove(h *obstacle.Obstacle) bool {
	if _, ok := m.obstacles[h]; !ok {
		return false
	}
	delete(m.obstacles, h)

	m.flood(h, func(idx int, _ float64) {
		dropStaleTop(&m.heaps[idx], m.obstacles)
	})

	return true
}

// Clear empties the obstacle set and every per-cell heap.
func (m *ClearanceMap) Clear() {
	m.obstacles = make(map[*obstacle.Obstacle]struct{})
	m.heaps = make([]cellHeap, m.rows*m.cols)
}

// ValAt returns the clearance at c: Invalid (-1) if c is out of bounds,
// otherwise min(edge clearance, nearest live obstacle distance).
func (m *ClearanceMap) ValAt(c geom.Cell) float64 {
	if !c.InBounds(m.rows, m.cols) {
		return Invalid
	}

	ec := EdgeClearance(m.rows, m.cols, c.X, c.Y)
	idx := m.index(c)
	dropStaleTop(&m.heaps[idx], m.obstacles)
	if m.heaps[idx].Len() == 0 {
		return ec
	}

	top := m.heaps[idx][0].dist
	if top < ec {
		return top
	}

	return ec
}

// Obstacles returns a snapshot of the currently-inserted obstacles.
func (m *ClearanceMap) Obstacles() []obstacle.Obstacle {
	out := make([]obstacle.Obstacle, 0, len(m.obstacles))
	for h := range m.obstacles {
		out = append(out, *h)
	}

	return out
}

// Snapshot returns the dense val_at grid, rows outer, cols inner. Used by
// raster.Heatmap and by tests asserting invariants across the whole
// map.
func (m *ClearanceMap) Snapshot() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		for j := range out[i] {
			out[i][j] = m.ValAt(geom.Cell{X: i, Y: j})
		}
	}

	return out
}

// flood runs the bounded BFS of spec §4.1 from h's center: for each
// dequeued cell c it computes d = h.DistanceToCell(c); if d does not
// exceed c's edge clearance, onReach is called with that cell's flat
// index and d, and the flood continues to c's unvisited neighbors.
// Otherwise the flood does not record anything at c and does not expand
// past it. A dense visited bitmap is local to the call.
func (m *ClearanceMap) flood(h *obstacle.Obstacle, onReach func(idx int, d float64)) {
	visited := make([]bool, m.rows*m.cols)
	start := h.Center
	visited[m.index(start)] = true
	queue := []geom.Cell{start}

	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		d := h.DistanceToCell(c)
		ec := EdgeClearance(m.rows, m.cols, c.X, c.Y)
		if d > ec {
			continue // monotone bound: obstacle cannot improve clearance past here
		}
		onReach(m.index(c), d)

		for _, n := range geom.Neighbors8(c, m.rows, m.cols) {
			idx := m.index(n)
			if !visited[idx] {
				visited[idx] = true
				queue = append(queue, n)
			}
		}
	}
}
