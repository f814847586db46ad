package scene

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/renderer"
)

// NewMirrorsScene creates two facing mirror walls with a matte sphere
// between them. Rays that keep bouncing between the mirrors exhaust the
// bounce budget and render as ambient.
func NewMirrorsScene() (*Scene, error) {
	mirror := geometry.NewMaterial(core.NewVec3(0.95, 0.95, 1.0), true)
	matte := geometry.NewMaterial(core.NewVec3(0.9, 0.4, 0.1), false)
	floor := geometry.NewMaterial(core.NewVec3(0.3, 0.3, 0.35), false)
	noRotation := core.NewVec3(0, 0, 0)

	b := &builder{}
	b.box(core.NewVec3(-3, 0, 0), core.NewVec3(0.1, 3, 6), noRotation, mirror)
	b.box(core.NewVec3(3, 0, 0), core.NewVec3(0.1, 3, 6), noRotation, mirror)
	b.box(core.NewVec3(0, -2, 0), core.NewVec3(3, 0.1, 6), noRotation, floor)
	b.sphere(core.NewVec3(0, -0.8, 0), 1.1, matte)

	w, err := b.world()
	if err != nil {
		return nil, err
	}

	shader := renderer.DefaultShader()
	shader.Ambient = core.NewVec3(0.02, 0.02, 0.05)

	return &Scene{
		Name:        "mirrors",
		World:       w,
		Camera:      lookAt(core.NewVec3(0.8, 0.5, 8), core.NewVec3(0, -0.5, 0), 45),
		MaxDistance: 5000,
		Shader:      shader,
	}, nil
}
