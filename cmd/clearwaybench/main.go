// Package main generates random clearance-map instances, plans across
// each, and aggregates path-length and clearance statistics.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/clearway/baseline"
	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
	"github.com/katalvlaran/clearway/planner"
)

// runResult is one instance's outcome, mirroring the fields a CSV/JSON
// consumer would want to pivot on.
type runResult struct {
	Instance      int     `json:"instance"`
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	NumObstacles  int     `json:"num_obstacles"`
	Success       bool    `json:"success"`
	PathLength    int     `json:"path_length"`
	MeanClearance float64 `json:"mean_clearance"`
	NodesExpanded int     `json:"nodes_expanded"`
	ElapsedMs     float64 `json:"elapsed_ms"`
	// ExactPathLength is the optimal path length under the same fit
	// constraint, populated only when -exact is set. 0 means not computed.
	ExactPathLength int `json:"exact_path_length,omitempty"`
}

func randomInstance(rng *rand.Rand, rows, cols, numObstacles int) *clearance.ClearanceMap {
	m, err := clearance.New(rows, cols)
	if err != nil {
		log.Fatalf("clearwaybench: New(%d,%d): %v", rows, cols, err)
	}
	for i := 0; i < numObstacles; i++ {
		center := geom.Cell{X: rng.Intn(rows), Y: rng.Intn(cols)}
		radius := 1 + rng.Float64()*3
		o, err := obstacle.New(center, radius)
		if err != nil {
			continue
		}
		m.Insert(o)
	}

	return m
}

func runOne(rng *rand.Rand, idx, rows, cols, numObstacles int, opts planner.Options, compareExact bool) runResult {
	field := randomInstance(rng, rows, cols, numObstacles)
	// Map corners have edge clearance 0 and fit no robot; start and target
	// are the corners of the inner ring instead.
	start := geom.Cell{X: 1, Y: 1}
	target := geom.Cell{X: rows - 2, Y: cols - 2}

	p := planner.New(field, opts)
	res, err := p.Plan(start, target)

	out := runResult{Instance: idx, Rows: rows, Cols: cols, NumObstacles: numObstacles}
	if err != nil {
		out.Success = false

		return out
	}

	clearances := make([]float64, len(res.Path))
	for i, c := range res.Path {
		clearances[i] = field.ValAt(c)
	}

	out.Success = true
	out.PathLength = len(res.Path)
	out.MeanClearance = stat.Mean(clearances, nil)
	out.NodesExpanded = res.NodesExpanded
	out.ElapsedMs = float64(res.Elapsed) / float64(time.Millisecond)

	if compareExact {
		if exact, err := baseline.ExactPath(field, start, target, opts.RobotRadius); err == nil {
			out.ExactPathLength = len(exact)
		}
	}

	return out
}

func writeCSV(path string, results []runResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"instance", "rows", "cols", "num_obstacles", "success", "path_length", "mean_clearance", "nodes_expanded", "elapsed_ms", "exact_path_length"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Instance),
			strconv.Itoa(r.Rows),
			strconv.Itoa(r.Cols),
			strconv.Itoa(r.NumObstacles),
			strconv.FormatBool(r.Success),
			strconv.Itoa(r.PathLength),
			strconv.FormatFloat(r.MeanClearance, 'f', -1, 64),
			strconv.Itoa(r.NodesExpanded),
			strconv.FormatFloat(r.ElapsedMs, 'f', -1, 64),
			strconv.Itoa(r.ExactPathLength),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func writeJSON(path string, results []runResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func main() {
	rows := flag.Int("rows", 32, "Map rows per instance")
	cols := flag.Int("cols", 32, "Map cols per instance")
	numObstacles := flag.Int("obstacles", 20, "Obstacles per instance")
	numInstances := flag.Int("instances", 50, "Number of random instances to run")
	lambda := flag.Float64("lambda", 0.5, "Lambda blend passed to every plan")
	robotRadius := flag.Float64("robot-radius", 0.5, "Robot radius passed to every plan")
	seed := flag.Int64("seed", 1, "Random seed")
	exact := flag.Bool("exact", false, "Also compute each instance's optimal path length via baseline.ExactPath, for comparison against planner's greedy result")
	csvPath := flag.String("csv", "", "Write per-instance results to this CSV path (empty skips)")
	jsonPath := flag.String("json", "", "Write per-instance results to this JSON path (empty skips)")
	flag.Parse()

	opts := planner.DefaultOptions()
	opts.Lambda = *lambda
	opts.RobotRadius = *robotRadius

	// Each instance gets its own rand.Rand seeded off the base seed —
	// math/rand.Rand isn't safe for concurrent use, and deriving each
	// worker's seed from the instance index keeps results reproducible
	// regardless of goroutine scheduling order.
	results := make([]runResult, *numInstances)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(*seed + int64(idx)))
			results[idx] = runOne(rng, idx, *rows, *cols, *numObstacles, opts, *exact)
		}(i)
	}
	wg.Wait()

	var pathLengths, clearances []float64
	successes := 0
	for _, r := range results {
		if !r.Success {
			continue
		}
		successes++
		pathLengths = append(pathLengths, float64(r.PathLength))
		clearances = append(clearances, r.MeanClearance)
	}

	fmt.Printf("%d/%d instances solved\n", successes, len(results))
	if successes > 0 {
		plMean, plStd := stat.MeanStdDev(pathLengths, nil)
		clMean, clStd := stat.MeanStdDev(clearances, nil)
		fmt.Printf("path length: mean=%.2f stddev=%.2f\n", plMean, plStd)
		fmt.Printf("mean clearance: mean=%.2f stddev=%.2f\n", clMean, clStd)
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, results); err != nil {
			log.Fatalf("clearwaybench: writing CSV: %v", err)
		}
	}
	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, results); err != nil {
			log.Fatalf("clearwaybench: writing JSON: %v", err)
		}
	}
}
