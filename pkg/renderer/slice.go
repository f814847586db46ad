package renderer

import "image"

// Slice is a contiguous band of full-width image rows rendered by one worker
type Slice struct {
	ID     int             // Position of the slice from the top of the image
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// Rows returns the number of rows in the slice
func (s Slice) Rows() int {
	return s.Bounds.Dy()
}

// NewSlicePlan splits height rows into count slices of height/count rows.
// The last slice also takes the height%count remainder rows.
func NewSlicePlan(width, height, count int) []Slice {
	rowsPerSlice := height / count
	slices := make([]Slice, count)

	for i := range slices {
		y0 := i * rowsPerSlice
		y1 := y0 + rowsPerSlice
		if i == count-1 {
			y1 = height
		}
		slices[i] = Slice{ID: i, Bounds: image.Rect(0, y0, width, y1)}
	}

	return slices
}
