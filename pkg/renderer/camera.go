package renderer

import (
	"errors"
	"math"

	"github.com/df07/go-raymarcher/pkg/core"
)

// ErrDegenerateBasis is returned when the camera cannot build an orthonormal basis
var ErrDegenerateBasis = errors.New("camera forward and up must be non-zero and not parallel")

// CameraConfig contains camera setup parameters
type CameraConfig struct {
	Position    core.Vec3 `json:"position"`    // Eye position
	Forward     core.Vec3 `json:"forward"`     // Viewing direction (normalized on construction)
	Up          core.Vec3 `json:"up"`          // Up hint, corrected to be orthogonal to Forward
	VFov        float64   `json:"vfov"`        // Vertical field of view in radians
	AspectRatio float64   `json:"aspectRatio"` // Width / height
	Near        float64   `json:"near"`        // Distance to the image plane
}

// Camera generates primary rays through an image plane
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3
	near     float64
	halfW    float64 // Horizontal image plane extent per unit offset
	halfH    float64 // Vertical image plane extent per unit offset
}

// NewCamera builds a camera from its configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	forward := config.Forward.Normalize()
	right := forward.Cross(config.Up).Normalize()
	if forward.IsZero() || right.IsZero() {
		return nil, ErrDegenerateBasis
	}
	up := right.Cross(forward).Normalize()

	scale := math.Tan(config.VFov/2) * config.Near
	return &Camera{
		position: config.Position,
		forward:  forward,
		right:    right,
		up:       up,
		near:     config.Near,
		halfW:    scale * config.AspectRatio,
		halfH:    scale,
	}, nil
}

// GetRay returns the ray through normalized image coordinates (x, y), both
// in [0,1]. y grows downward in the image but upward in the world.
func (c *Camera) GetRay(x, y float64) core.Ray {
	offsetX := c.halfW * (x - 0.5)
	offsetY := c.halfH * (0.5 - y)

	pixel := c.position.
		Add(c.forward.Multiply(c.near)).
		Add(c.right.Multiply(offsetX)).
		Add(c.up.Multiply(offsetY))

	return core.NewRay(c.position, pixel.Subtract(c.position).Normalize())
}

// Basis returns the camera's orthonormal forward, right and up vectors
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	return c.forward, c.right, c.up
}
