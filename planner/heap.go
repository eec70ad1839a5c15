package planner

import "github.com/katalvlaran/clearway/geom"

// frontierItem is one (score, cell) entry in the search frontier.
type frontierItem struct {
	score float64
	cell  geom.Cell
}

// frontier is a binary max-heap on score, implementing container/heap.Interface.
// Ties resolve arbitrarily; insertion order is not part of the contract.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].score > f[j].score } // max-heap
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
