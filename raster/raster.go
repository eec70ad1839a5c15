package raster

import "image/color"

// PixelBuffer is a (rows, cols) grid of 3-channel colors. It is the only
// rendering data type the planner depends on for trace output.
type PixelBuffer interface {
	Rows() int
	Cols() int
	At(i, j int) color.NRGBA
	Set(i, j int, c color.NRGBA)
}

// FrameSink accepts successive PixelBuffers of a fixed size and finalizes
// whatever it has accumulated when Close is called. Implementations must
// tolerate Close being the only call (zero frames written).
type FrameSink interface {
	WriteFrame(buf PixelBuffer) error
	Close() error
}

// Grid is the reference PixelBuffer implementation: a dense in-memory
// rows x cols array of colors.
type Grid struct {
	rows, cols int
	pix        []color.NRGBA
}

// NewGrid returns a Grid of the given dimensions, filled with black.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, pix: make([]color.NRGBA, rows*cols)}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) At(i, j int) color.NRGBA {
	return g.pix[i*g.cols+j]
}

func (g *Grid) Set(i, j int, c color.NRGBA) {
	g.pix[i*g.cols+j] = c
}
