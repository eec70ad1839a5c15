package raster

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// ErrFrameSizeMismatch indicates a frame's dimensions differ from the
// sink's first frame.
var ErrFrameSizeMismatch = errors.New("raster: frame dimensions do not match sink")

// GIFSink is a FrameSink backed by the standard library's animated-GIF
// encoder: the standard library's own image/gif package is sufficient to
// exercise the frame-sink contract without pulling in a cgo video codec,
// which nothing else in this module's stack needs either.
type GIFSink struct {
	w          io.Writer
	rows, cols int
	delay      int // centiseconds per frame, matches image/gif's Delay unit
	anim       gif.GIF
}

// NewGIFSink returns a GIFSink that writes to w once Close is called.
// fps controls playback speed (frames per second); fps <= 0 defaults to 10,
// matching the original C++ trace writer's frame rate.
func NewGIFSink(w io.Writer, fps int) *GIFSink {
	if fps <= 0 {
		fps = 10
	}

	return &GIFSink{w: w, delay: 100 / fps}
}

// WriteFrame encodes buf as the next frame. The first call fixes the
// sink's dimensions; subsequent frames must match.
func (s *GIFSink) WriteFrame(buf PixelBuffer) error {
	if s.rows == 0 && s.cols == 0 {
		s.rows, s.cols = buf.Rows(), buf.Cols()
	} else if buf.Rows() != s.rows || buf.Cols() != s.cols {
		return ErrFrameSizeMismatch
	}

	img := image.NewPaletted(image.Rect(0, 0, s.cols, s.rows), palette.Plan9)
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			draw.Draw(img, image.Rect(j, i, j+1, i+1), &image.Uniform{C: buf.At(i, j)}, image.Point{}, draw.Src)
		}
	}

	s.anim.Image = append(s.anim.Image, img)
	s.anim.Delay = append(s.anim.Delay, s.delay)

	return nil
}

// Close finalizes the accumulated frames into a single animated GIF
// written to the underlying writer.
func (s *GIFSink) Close() error {
	if len(s.anim.Image) == 0 {
		return nil
	}

	return gif.EncodeAll(s.w, &s.anim)
}
