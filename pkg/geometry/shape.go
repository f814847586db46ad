package geometry

import "github.com/df07/go-raymarcher/pkg/core"

// NormalStep is the finite-difference offset used to estimate normals
const NormalStep = 1e-4

// Tetrahedral sample offsets; their sign pattern doubles as the weights.
var normalOffsets = [4]core.Vec3{
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: 1},
}

// Normal estimates the outward surface normal of shape at point from the
// gradient of its distance field. It works for any Shape.
func Normal(shape Shape, point core.Vec3) core.Vec3 {
	var gradient core.Vec3
	for _, k := range normalOffsets {
		d := shape.Distance(point.Add(k.Multiply(NormalStep)))
		gradient = gradient.Add(k.Multiply(d))
	}
	return gradient.Normalize()
}
