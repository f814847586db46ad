// Package sink stores rendered pixels and writes them out as image files.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// ErrEmptyImage is returned when a sink would have no pixels
	ErrEmptyImage = errors.New("image width and height must be greater than 0")
	// ErrOutOfBounds is returned for pixel or block access outside the buffer
	ErrOutOfBounds = errors.New("pixel out of bounds")
)

// ColorSink is a width x height buffer of 8-bit RGBA pixels
type ColorSink struct {
	img *image.RGBA
}

// New allocates a black, opaque sink
func New(width, height int) (*ColorSink, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyImage, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	return &ColorSink{img: img}, nil
}

// Width returns the number of columns
func (s *ColorSink) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the number of rows
func (s *ColorSink) Height() int {
	return s.img.Rect.Dy()
}

// Image exposes the underlying image for encoding
func (s *ColorSink) Image() *image.RGBA {
	return s.img
}

func (s *ColorSink) contains(x, y int) bool {
	return image.Pt(x, y).In(s.img.Rect)
}

// SetPixel writes a single pixel
func (s *ColorSink) SetPixel(x, y int, c color.RGBA) error {
	if !s.contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, s.Width(), s.Height())
	}
	s.img.SetRGBA(x, y, c)
	return nil
}

// GetPixel reads a single pixel
func (s *ColorSink) GetPixel(x, y int) (color.RGBA, error) {
	if !s.contains(x, y) {
		return color.RGBA{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, s.Width(), s.Height())
	}
	return s.img.RGBAAt(x, y), nil
}

// SetBlock copies all rows of block into s starting at row. The block must
// have the same width as s and fit below row.
func (s *ColorSink) SetBlock(row int, block *ColorSink) error {
	if block.Width() != s.Width() {
		return fmt.Errorf("block width %d does not match sink width %d", block.Width(), s.Width())
	}
	if row < 0 || row+block.Height() > s.Height() {
		return fmt.Errorf("%w: rows [%d,%d) in height %d", ErrOutOfBounds, row, row+block.Height(), s.Height())
	}
	draw.Copy(s.img, image.Pt(0, row), block.img, block.img.Bounds(), draw.Src, nil)
	return nil
}
