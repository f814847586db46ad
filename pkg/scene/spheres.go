package scene

import (
	"math"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/renderer"
)

// NewSpheresScene creates a small open scene: matte spheres and a rotated
// box on a floor slab, with one mirror sphere picking up the others.
func NewSpheresScene() (*Scene, error) {
	floor := geometry.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), false)
	red := geometry.NewMaterial(core.NewVec3(0.9, 0.25, 0.2), false)
	blue := geometry.NewMaterial(core.NewVec3(0.2, 0.35, 0.9), false)
	gold := geometry.NewMaterial(core.NewVec3(0.9, 0.7, 0.3), false)
	chrome := geometry.NewMaterial(core.NewVec3(1, 1, 1), true)

	b := &builder{}
	b.box(core.NewVec3(0, -1.1, 0), core.NewVec3(20, 0.1, 20), core.NewVec3(0, 0, 0), floor)
	b.sphere(core.NewVec3(-2.2, 0, 0), 1, red)
	b.sphere(core.NewVec3(0, 0, -1), 1, chrome)
	b.sphere(core.NewVec3(2.2, -0.4, 0.4), 0.6, blue)
	b.box(core.NewVec3(1.2, -0.5, 2), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, math.Pi/5, 0), gold)

	w, err := b.world()
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "spheres",
		World:       w,
		Camera:      lookAt(core.NewVec3(0, 1.5, 7), core.NewVec3(0, -0.2, 0), 50),
		MaxDistance: 100,
		Shader:      renderer.DefaultShader(),
	}, nil
}
