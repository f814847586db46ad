package scene

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/renderer"
)

// NewMirrorRoomScene creates a closed room of mirror walls holding a unit
// mirror sphere at the origin and eight large mirror spheres at the corners.
// Almost every path ends on the distance budget, so the image is shaped by
// the bounce weight palette.
func NewMirrorRoomScene() (*Scene, error) {
	wall := geometry.NewMaterial(rgb(245, 243, 193), true)
	ball := geometry.NewMaterial(rgb(39, 225, 193), true)
	noRotation := core.NewVec3(0, 0, 0)

	b := &builder{}

	// Floor, ceiling, back, front, left and right walls
	b.box(core.NewVec3(0, -10, 0), core.NewVec3(100, 0.1, 100), noRotation, wall)
	b.box(core.NewVec3(0, 10, 0), core.NewVec3(100, 0.1, 100), noRotation, wall)
	b.box(core.NewVec3(0, 0, 10), core.NewVec3(100, 100, 0.1), noRotation, wall)
	b.box(core.NewVec3(0, 0, -10), core.NewVec3(100, 100, 0.1), noRotation, wall)
	b.box(core.NewVec3(-10, 0, 0), core.NewVec3(0.1, 100, 100), noRotation, wall)
	b.box(core.NewVec3(10, 0, 0), core.NewVec3(0.1, 100, 100), noRotation, wall)

	b.sphere(core.NewVec3(0, 0, 0), 1.0, ball)
	for _, x := range []float64{-10, 10} {
		for _, y := range []float64{-10, 10} {
			for _, z := range []float64{-10, 10} {
				b.sphere(core.NewVec3(x, y, z), 5.0, ball)
			}
		}
	}

	w, err := b.world()
	if err != nil {
		return nil, err
	}

	shader := renderer.DefaultShader()
	shader.PaletteScale = 0.02

	return &Scene{
		Name:        "mirror-room",
		World:       w,
		Camera:      lookAt(core.NewVec3(3, 2, -7), core.NewVec3(0, 0, 0), 70),
		MaxDistance: 400,
		Shader:      shader,
	}, nil
}
