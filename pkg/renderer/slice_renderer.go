package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/sink"
	"github.com/df07/go-raymarcher/pkg/world"
)

// RenderConfig contains configuration for slice-parallel rendering
type RenderConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	Slices      int     // Number of horizontal slices, one worker each (0 = use CPU count)
	MaxDistance float64 // Path length budget passed to every cast
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:       400,
		Height:      400,
		Slices:      0,
		MaxDistance: 1000,
	}
}

// 2x2 supersample pattern in pixel units around the pixel center
var sampleOffsets = [4][2]float64{
	{-0.25, -0.25},
	{0.25, -0.25},
	{-0.25, 0.25},
	{0.25, 0.25},
}

// SliceRenderer renders an image by splitting it into horizontal slices and
// rendering each slice on its own goroutine. World, camera and shader are
// shared read-only between workers.
type SliceRenderer struct {
	world  *world.World
	camera *Camera
	shader Shader
	config RenderConfig
	slices []Slice
	logger core.Logger
}

// NewSliceRenderer validates the configuration and plans the slices
func NewSliceRenderer(w *world.World, camera *Camera, shader Shader, config RenderConfig, logger core.Logger) (*SliceRenderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", sink.ErrEmptyImage, config.Width, config.Height)
	}
	if config.Slices < 0 || config.Slices > config.Height {
		return nil, fmt.Errorf("slice count must be between 1 and the image height %d, got %d", config.Height, config.Slices)
	}
	if config.Slices == 0 {
		config.Slices = min(runtime.NumCPU(), config.Height)
	}
	if w == nil || camera == nil {
		return nil, errors.New("slice renderer needs a world and a camera")
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &SliceRenderer{
		world:  w,
		camera: camera,
		shader: shader,
		config: config,
		slices: NewSlicePlan(config.Width, config.Height, config.Slices),
		logger: logger,
	}, nil
}

// Slices returns the slice plan used by the renderer
func (sr *SliceRenderer) Slices() []Slice {
	return sr.slices
}

// Render renders every slice in parallel and assembles them into one image.
// If any worker fails or ctx is cancelled, no image is returned.
func (sr *SliceRenderer) Render(ctx context.Context) (*sink.ColorSink, RenderStats, error) {
	startTime := time.Now()
	sr.logger.Printf("Rendering %dx%d in %d slices...\n", sr.config.Width, sr.config.Height, len(sr.slices))

	buffers := make([]*sink.ColorSink, len(sr.slices))
	sliceStats := make([]RenderStats, len(sr.slices))

	g, gctx := errgroup.WithContext(ctx)
	for i, slice := range sr.slices {
		i, slice := i, slice // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			buffer, stats, err := sr.renderSlice(gctx, slice)
			if err != nil {
				return fmt.Errorf("slice %d: %w", slice.ID, err)
			}
			// Each worker writes only its own index
			buffers[i] = buffer
			sliceStats[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	final, err := sink.New(sr.config.Width, sr.config.Height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	var stats RenderStats
	for i, slice := range sr.slices {
		if err := final.SetBlock(slice.Bounds.Min.Y, buffers[i]); err != nil {
			return nil, RenderStats{}, fmt.Errorf("merging slice %d: %w", slice.ID, err)
		}
		stats.Merge(sliceStats[i])
	}

	sr.logger.Printf("Render completed in %v (%d samples, %d hits, %d capped, %d misses, %d absent)\n",
		time.Since(startTime), stats.TotalSamples, stats.Hits, stats.CappedHits, stats.Misses, stats.Absent)

	return final, stats, nil
}

// renderSlice renders one slice into a private buffer. A panic in the
// worker is reported as an error so the whole render fails cleanly.
func (sr *SliceRenderer) renderSlice(ctx context.Context, slice Slice) (buffer *sink.ColorSink, stats RenderStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			buffer = nil
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()

	bounds := slice.Bounds
	buffer, err = sink.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, RenderStats{}, err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := sr.samplePixel(x, y, &stats)
			if err := buffer.SetPixel(x-bounds.Min.X, y-bounds.Min.Y, ToRGBA(c)); err != nil {
				return nil, RenderStats{}, err
			}
			stats.TotalPixels++
		}
	}

	sr.logger.Printf("Slice %d (rows %d-%d) done\n", slice.ID, bounds.Min.Y, bounds.Max.Y-1)
	return buffer, stats, nil
}

// samplePixel averages the shaded colors of the 2x2 supersample
func (sr *SliceRenderer) samplePixel(x, y int, stats *RenderStats) core.Vec3 {
	width := float64(sr.config.Width)
	height := float64(sr.config.Height)

	var colorAccum core.Vec3
	for _, offset := range sampleOffsets {
		u := (float64(x) + 0.5 + offset[0]) / width
		v := (float64(y) + 0.5 + offset[1]) / height

		result := sr.world.Cast(sr.camera.GetRay(u, v), sr.config.MaxDistance)
		stats.record(result)
		colorAccum = colorAccum.Add(sr.shader.Shade(result))
	}

	return colorAccum.Multiply(1.0 / float64(len(sampleOffsets)))
}
