package clearance

import (
	"container/heap"

	"github.com/katalvlaran/clearway/obstacle"
)

// entry is one (distance, obstacle-handle) pair recorded by an obstacle's
// flood. The handle is the pointer returned by ClearanceMap.Insert, used
// as a stable identity independent of the obstacle's value.
type entry struct {
	dist float64
	obs  *obstacle.Obstacle
}

// cellHeap is a binary min-heap of entries ordered by ascending distance,
// implementing container/heap.Interface. One exists per grid cell that an
// obstacle's flood has reached; cells no obstacle ever reaches stay nil.
type cellHeap []entry

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// dropStaleTop pops entries off h whose obstacle is no longer in live,
// leaving either an empty heap or a heap whose top is a live obstacle.
// Interior stale entries are never compacted — only the top is ever
// inspected, per the lazy-deletion design in clearance's package doc.
func dropStaleTop(h *cellHeap, live map[*obstacle.Obstacle]struct{}) {
	for h.Len() > 0 {
		top := (*h)[0]
		if _, ok := live[top.obs]; ok {
			return
		}
		heap.Pop(h)
	}
}
