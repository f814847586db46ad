package geometry

import (
	"fmt"

	"github.com/df07/go-raymarcher/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, material Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		mat:    material,
	}, nil
}

// Distance returns the exact signed distance from point to the sphere surface
func (s *Sphere) Distance(point core.Vec3) float64 {
	return point.Subtract(s.Center).Length() - s.Radius
}

// Material returns the sphere's material
func (s *Sphere) Material() Material {
	return s.mat
}
