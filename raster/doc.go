// Package raster defines the rendering boundary the planner depends on
// (component R of clearway, deliberately minimal per spec): a pixel
// buffer of per-cell 3-channel colors, and a frame sink that accepts
// successive buffers of a fixed size and finalizes on Close. The core
// clearance/planner packages never assume a particular image library;
// any type satisfying PixelBuffer/FrameSink suffices.
//
// This package also ships two reference implementations so clearway is
// runnable end to end without an external rendering dependency: Grid (an
// in-memory PixelBuffer) and GIFSink (a FrameSink backed by the standard
// library's animated-GIF encoder). Heatmap renders a clearance snapshot,
// obstacles, and a search trail into a Grid, recovering the color scheme
// of the original C++ Robot::showOnMap heat-map mode.
package raster
