// Package world holds the scene geometry and the sphere tracer that
// intersects rays with it.
package world

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
)

// CastConfig bounds the work done by a single cast
type CastConfig struct {
	MaxSteps   int     // March iterations per path segment
	Epsilon    float64 // Distance below which a march has reached a surface
	MaxBounces int     // Reflections allowed before a path is abandoned
}

// DefaultCastConfig returns the limits used for regular renders
func DefaultCastConfig() CastConfig {
	return CastConfig{
		MaxSteps:   500,
		Epsilon:    1e-4,
		MaxBounces: 500,
	}
}

// World is an ordered, read-only collection of shapes. It is safe to share
// between goroutines once constructed.
type World struct {
	shapes []geometry.Shape
	config CastConfig
}

// NewWorld creates a world with the default cast limits
func NewWorld(shapes ...geometry.Shape) *World {
	return NewWorldWithConfig(DefaultCastConfig(), shapes...)
}

// NewWorldWithConfig creates a world with explicit cast limits
func NewWorldWithConfig(config CastConfig, shapes ...geometry.Shape) *World {
	// Copy so later changes to the caller's slice cannot leak into a render
	owned := make([]geometry.Shape, len(shapes))
	copy(owned, shapes)
	return &World{shapes: owned, config: config}
}

// Shapes returns a copy of the shapes in scene order
func (w *World) Shapes() []geometry.Shape {
	out := make([]geometry.Shape, len(w.shapes))
	copy(out, w.shapes)
	return out
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.shapes)
}

// Config returns the cast limits of the world
func (w *World) Config() CastConfig {
	return w.config
}

// closest evaluates every shape at point and returns the smallest distance
// together with the shape that produced it. Ties go to the earlier shape.
func (w *World) closest(point core.Vec3) (float64, geometry.Shape) {
	var closestShape geometry.Shape
	minDist := 0.0
	for i, shape := range w.shapes {
		dist := shape.Distance(point)
		if i == 0 || dist < minDist {
			minDist = dist
			closestShape = shape
		}
	}
	return minDist, closestShape
}
