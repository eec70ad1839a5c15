package planner

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/raster"
)

// noParent marks the start cell in the parent map: it has no predecessor.
var noParent = geom.Cell{X: -1, Y: -1}

// Planner runs clearance-weighted best-first search (spec §4.2) over a
// ClearanceMap. A Planner is not safe for concurrent Plan calls; each
// Plan call owns its own search state regardless.
type Planner struct {
	field *clearance.ClearanceMap
	opts  Options
	state State
}

// New returns a Planner over field with the given Options. It does not
// validate Options itself; Plan validates lambda per call so Options can
// be reused and mutated between calls.
func New(field *clearance.ClearanceMap, opts Options) *Planner {
	return &Planner{field: field, opts: opts, state: Idle}
}

// State returns the Planner's current state-machine position.
func (p *Planner) State() State { return p.state }

// Plan searches for an 8-adjacency path from start to target such that
// every cell on the path has clearance >= RobotRadius. It blends
// clearance-seeking and goal-seeking per Options.Lambda:
//
//	Score(c) = lambda*s(c) - (1-lambda)*log(h(c)+0.01)
//
// where s(c) is clearance normalized by half the map's larger dimension
// and h(c) is Euclidean distance-to-target normalized by the map's
// diagonal. The frontier is a max-heap on Score and cells are visited at
// most once, so the search is greedy, not admissible: it can return a
// longer path than an exhaustive search would, trading optimality for a
// single forward pass.
func (p *Planner) Plan(start, target geom.Cell) (Result, error) {
	p.state = Validating
	begin := time.Now()

	rows, cols := p.field.Rows(), p.field.Cols()
	if !start.InBounds(rows, cols) || !target.InBounds(rows, cols) {
		p.state = Failed

		return Result{}, ErrOutOfBounds
	}
	if p.opts.Lambda < 0 || p.opts.Lambda > 1 {
		p.state = Failed

		return Result{}, ErrInvalidLambda
	}
	if p.field.ValAt(start) < p.opts.RobotRadius {
		p.state = Failed

		return Result{}, ErrDoesNotFit
	}

	p.state = Searching

	sMax := float64(rows) / 2
	if c := float64(cols) / 2; c > sMax {
		sMax = c
	}
	if sMax <= 0 {
		sMax = 1
	}
	dMax := math.Hypot(float64(rows), float64(cols))
	if dMax <= 0 {
		dMax = 1
	}

	score := func(c geom.Cell) float64 {
		s := p.field.ValAt(c) / sMax
		h := geom.Euclid(c, target) / dMax

		return p.opts.Lambda*s - (1-p.opts.Lambda)*math.Log(h+0.01)
	}

	visited := make(map[geom.Cell]bool, rows*cols)
	parent := make(map[geom.Cell]geom.Cell, rows*cols)

	fr := make(frontier, 0, 64)
	heap.Push(&fr, frontierItem{score: score(start), cell: start})
	visited[start] = true
	parent[start] = noParent

	var trail []geom.Cell
	expanded := 0
	found := false

	for fr.Len() > 0 {
		cur := heap.Pop(&fr).(frontierItem).cell
		expanded++
		if p.opts.Trace != nil {
			trail = append(trail, cur)
		}

		if cur == target {
			found = true

			break
		}

		for _, n := range geom.Neighbors8(cur, rows, cols) {
			if visited[n] {
				continue
			}
			if p.field.ValAt(n) < p.opts.RobotRadius {
				continue
			}
			visited[n] = true
			parent[n] = cur
			heap.Push(&fr, frontierItem{score: score(n), cell: n})
		}
	}

	if p.opts.Trace != nil {
		p.emitTrace(start, target, trail)
	}

	if !found {
		p.state = Unreachable

		return Result{}, ErrUnreachable
	}

	path := reconstruct(parent, start, target)
	p.state = Done

	return Result{Path: path, Elapsed: time.Since(begin), NodesExpanded: expanded}, nil
}

func reconstruct(parent map[geom.Cell]geom.Cell, start, target geom.Cell) Path {
	var rev Path
	for c := target; ; {
		rev = append(rev, c)
		if c == start {
			break
		}
		c = parent[c]
	}

	out := make(Path, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}

	return out
}

// emitTrace down-samples the search trail to roughly TraceEvery-spaced
// frames (or ~100 frames total when TraceEvery is 0, matching the
// original C++ trace writer's div = max(len(search)/100, 1)) and writes
// one raster.Heatmap frame per sampled step.
func (p *Planner) emitTrace(start, target geom.Cell, trail []geom.Cell) {
	defer p.opts.Trace.Close()

	if len(trail) == 0 {
		return
	}

	step := p.opts.TraceEvery
	if step <= 0 {
		step = len(trail) / 100
	}
	if step <= 0 {
		step = 1
	}

	for i := 0; i < len(trail); i += step {
		frame := raster.Heatmap(p.field, start, target, p.opts.RobotRadius, trail[:i+1])
		if err := p.opts.Trace.WriteFrame(frame); err != nil {
			return
		}
	}
}
