// Package main is the clearway CLI: load a map file, plan a path on it,
// and optionally write the search trace as an animated GIF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/clearway/config"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/mapfile"
	"github.com/katalvlaran/clearway/planner"
	"github.com/katalvlaran/clearway/raster"
)

func main() {
	mapPath := flag.String("map", "", "Map file to load (required)")
	configPath := flag.String("config", "", "Config YAML file (empty = embedded defaults)")
	startX := flag.Int("start-x", 0, "Start cell row")
	startY := flag.Int("start-y", 0, "Start cell column")
	targetX := flag.Int("target-x", 0, "Target cell row")
	targetY := flag.Int("target-y", 0, "Target cell column")
	lambda := flag.Float64("lambda", -1, "Override lambda (default: config value)")
	robotRadius := flag.Float64("robot-radius", -1, "Override robot radius (default: config value)")
	tracePath := flag.String("trace", "", "Write search-frame animated GIF to this path (empty disables tracing)")
	flag.Parse()

	if *mapPath == "" {
		log.Fatal("clearway: -map is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("clearway: loading config: %v", err)
	}

	f, err := os.Open(*mapPath)
	if err != nil {
		log.Fatalf("clearway: opening map: %v", err)
	}
	defer f.Close()

	field, err := mapfile.Load(f)
	if err != nil {
		log.Fatalf("clearway: loading map: %v", err)
	}

	opts := planner.DefaultOptions()
	opts.Lambda = cfg.Planner.Lambda
	opts.RobotRadius = cfg.Planner.RobotRadius
	opts.TraceEvery = cfg.Planner.TraceFrameTarget
	if *lambda >= 0 {
		opts.Lambda = *lambda
	}
	if *robotRadius >= 0 {
		opts.RobotRadius = *robotRadius
	}

	var traceFile *os.File
	if *tracePath != "" {
		traceFile, err = os.Create(*tracePath)
		if err != nil {
			log.Fatalf("clearway: creating trace file: %v", err)
		}
		defer traceFile.Close()
		opts.Trace = raster.NewGIFSink(traceFile, 10)
	}

	p := planner.New(field, opts)
	start := geom.Cell{X: *startX, Y: *startY}
	target := geom.Cell{X: *targetX, Y: *targetY}

	res, err := p.Plan(start, target)
	if err != nil {
		log.Fatalf("clearway: plan failed (%s): %v", p.State(), err)
	}

	fmt.Printf("path found: %d cells, %d nodes expanded, %v elapsed\n", len(res.Path), res.NodesExpanded, res.Elapsed)
	for _, c := range res.Path {
		fmt.Printf("%d %d\n", c.X, c.Y)
	}
}
