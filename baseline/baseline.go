package baseline

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
)

// ErrUnreachable indicates no passable path connects start and target.
var ErrUnreachable = errors.New("baseline: no path satisfies the fit constraint")

// ExactPath returns the shortest 8-adjacency path from start to target
// over cells with clearance >= robotRadius, using an ordinary weighted
// Dijkstra over the grid rather than planner's clearance-weighted
// best-first search. It exists to measure how far planner's greedy
// result strays from optimal, not to replace planner. Edge weight is the
// Euclidean step length (1 orthogonal, sqrt(2) diagonal), so a diagonal
// step is always preferred over the two orthogonal steps that cover the
// same ground. Both start and target must meet robotRadius.
func ExactPath(field *clearance.ClearanceMap, start, target geom.Cell, robotRadius float64) ([]geom.Cell, error) {
	rows, cols := field.Rows(), field.Cols()
	if !start.InBounds(rows, cols) || !target.InBounds(rows, cols) {
		return nil, ErrUnreachable
	}
	if field.ValAt(start) < robotRadius || field.ValAt(target) < robotRadius {
		return nil, ErrUnreachable
	}

	dist := make(map[geom.Cell]float64, rows*cols)
	parent := make(map[geom.Cell]geom.Cell, rows*cols)
	visited := make(map[geom.Cell]bool, rows*cols)

	dist[start] = 0
	pq := &distHeap{{dist: 0, cell: start}}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if visited[cur.cell] {
			continue
		}
		visited[cur.cell] = true

		if cur.cell == target {
			break
		}

		for _, n := range geom.Neighbors8(cur.cell, rows, cols) {
			if visited[n] || field.ValAt(n) < robotRadius {
				continue
			}
			nd := cur.dist + geom.Euclid(cur.cell, n)
			if d, ok := dist[n]; !ok || nd < d {
				dist[n] = nd
				parent[n] = cur.cell
				heap.Push(pq, distItem{dist: nd, cell: n})
			}
		}
	}

	if !visited[target] {
		return nil, ErrUnreachable
	}

	var rev []geom.Cell
	for c := target; ; {
		rev = append(rev, c)
		if c == start {
			break
		}
		c = parent[c]
	}

	path := make([]geom.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path, nil
}
