package geometry

import (
	"fmt"

	"github.com/df07/go-raymarcher/pkg/core"
)

// Box represents an oriented rectangular box. Thin boxes serve as walls.
type Box struct {
	Center      core.Vec3 // Center point of the box
	HalfExtents core.Vec3 // Half size along each local axis (so (1,1,1) is a 2x2x2 box)
	Orientation core.Mat3 // Rotation from box space to world space
	mat         Material
	toLocal     core.Mat3 // Cached inverse of Orientation
}

// NewBox creates a new box with the given center, half-extents, orientation and material.
// All half-extents must be positive.
func NewBox(center, halfExtents core.Vec3, orientation core.Mat3, material Material) (*Box, error) {
	if !(halfExtents.X > 0 && halfExtents.Y > 0 && halfExtents.Z > 0) {
		return nil, fmt.Errorf("box half-extents must be positive, got %v", halfExtents)
	}
	return &Box{
		Center:      center,
		HalfExtents: halfExtents,
		Orientation: orientation,
		mat:         material,
		toLocal:     orientation.Transpose(),
	}, nil
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, halfExtents core.Vec3, material Material) (*Box, error) {
	return NewBox(center, halfExtents, core.Identity, material)
}

// NewRotatedBox creates a box rotated by angles (radians, applied X then Y then Z)
func NewRotatedBox(center, halfExtents, angles core.Vec3, material Material) (*Box, error) {
	return NewBox(center, halfExtents, core.RotationXYZ(angles), material)
}

// Distance returns the exact signed distance from point to the box surface.
// Outside, the positive part of q gives the Euclidean distance to the
// nearest face, edge or corner; inside, the min term gives the distance to
// the closest face.
func (b *Box) Distance(point core.Vec3) float64 {
	local := b.toLocal.MulVec(point.Subtract(b.Center))
	q := local.Abs().Subtract(b.HalfExtents)
	return q.Max(core.Vec3{}).Length() + min(q.MaxComponent(), 0)
}

// Material returns the box's material
func (b *Box) Material() Material {
	return b.mat
}
