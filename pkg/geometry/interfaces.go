package geometry

import "github.com/df07/go-raymarcher/pkg/core"

// Material describes how a surface responds to a ray
type Material struct {
	Color      core.Vec3 // Base color, conceptually in [0,1] but not clamped
	Reflective bool      // Mirror surfaces reflect rays instead of terminating them
}

// NewMaterial creates a material from a color and reflectivity
func NewMaterial(color core.Vec3, reflective bool) Material {
	return Material{Color: color, Reflective: reflective}
}

// Shape is anything that can be sphere traced. Distance must be a signed
// distance estimate: non-positive inside the surface and never larger than
// the true distance to the surface.
type Shape interface {
	Distance(point core.Vec3) float64
	Material() Material
}
