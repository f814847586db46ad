package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/world"
)

func TestAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 averages to 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := AverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	if avgLum := AverageLuminance(img); avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}
}

func TestRenderStats_RecordAndMerge(t *testing.T) {
	var a, b RenderStats

	a.record(&world.Hit{Normal: core.NewVec3(0, 1, 0), Bounces: 2})
	a.record(&world.Hit{Bounces: 5}) // capped
	a.record(nil)
	b.record(&world.Miss{Bounces: 9})
	b.record(&world.Hit{Normal: core.NewVec3(1, 0, 0)})
	a.TotalPixels, b.TotalPixels = 1, 1

	a.Merge(b)

	expected := RenderStats{
		TotalPixels:  2,
		TotalSamples: 5,
		Hits:         2,
		CappedHits:   1,
		Misses:       1,
		Absent:       1,
		MaxBounces:   9,
	}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
}
