package baseline

import "github.com/katalvlaran/clearway/geom"

// distItem is one (distance, cell) entry in Dijkstra's frontier.
type distItem struct {
	dist float64
	cell geom.Cell
}

// distHeap is a binary min-heap on dist, implementing
// container/heap.Interface — the same shape as clearance's cellHeap and
// planner's frontier, just ordered ascending for shortest-path search
// instead of descending for best-first search.
type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
