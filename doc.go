// Package clearway is a 2D grid clearance-field and path planner.
//
// What is clearway?
//
//	A library for maintaining a live distance-to-obstacle field over a
//	fixed-size grid, and for planning paths across it that trade off
//	maximizing clearance against reaching a goal:
//
//	  - clearance: incremental obstacle insert/remove with bounded-BFS
//	    re-flooding, keyed by a monotone per-cell clearance bound
//	  - planner: single-pass clearance-weighted best-first search with a
//	    tunable lambda between clearance-seeking and goal-seeking
//	  - obstacle/geom: the circular-obstacle and grid-cell primitives both
//	    of the above share
//	  - raster/mapfile/config: the rendering, persistence, and
//	    configuration boundaries around the core
//
// Everything is organized under subpackages:
//
//	geom/      — grid cell coordinates, adjacency, distance
//	obstacle/  — circular obstacles and their distance function
//	clearance/ — the incremental clearance field (component C1)
//	planner/   — clearance-weighted best-first search (component C2)
//	raster/    — pixel buffer / frame sink contracts plus a GIF reference sink
//	mapfile/   — the line-oriented persisted map format
//	config/    — embedded YAML defaults for planner and map parameters
//	cmd/       — the clearway CLI and the clearwaybench benchmark harness
//
//	go get github.com/katalvlaran/clearway
package clearway
