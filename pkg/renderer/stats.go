package renderer

import (
	"image"

	"github.com/df07/go-raymarcher/pkg/world"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int // Total number of pixels rendered
	TotalSamples int // Total number of rays cast (four per pixel)
	Hits         int // Samples ending on a non-reflective surface
	CappedHits   int // Samples stopped by the distance budget
	Misses       int // Samples that used up their march steps
	Absent       int // Samples with no result (empty world or too many bounces)
	MaxBounces   int // Most reflections seen on any sample that produced a result
}

// record counts the outcome of a single sample
func (rs *RenderStats) record(result world.CastResult) {
	rs.TotalSamples++
	switch r := result.(type) {
	case *world.Hit:
		if r.Capped() {
			rs.CappedHits++
		} else {
			rs.Hits++
		}
		rs.MaxBounces = max(rs.MaxBounces, r.Bounces)
	case *world.Miss:
		rs.Misses++
		rs.MaxBounces = max(rs.MaxBounces, r.Bounces)
	default:
		rs.Absent++
	}
}

// Merge folds the statistics of another slice into rs
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.Hits += other.Hits
	rs.CappedHits += other.CappedHits
	rs.Misses += other.Misses
	rs.Absent += other.Absent
	rs.MaxBounces = max(rs.MaxBounces, other.MaxBounces)
}

// AverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func AverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
