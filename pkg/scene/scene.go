// Package scene provides the built-in scenes the CLI can render.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/world"
)

// ErrUnknownScene is returned by ByName for names with no registered scene
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       *world.World
	Camera      renderer.CameraConfig // AspectRatio is filled in by the caller from the image size
	MaxDistance float64               // Path length budget for every cast
	Shader      renderer.Shader
}

type constructor struct {
	description string
	build       func() (*Scene, error)
}

var registry = map[string]constructor{
	"mirror-room": {"Reflective box room around nine mirror spheres", NewMirrorRoomScene},
	"spheres":     {"Matte spheres and a rotated box on a floor, with one mirror", NewSpheresScene},
	"mirrors":     {"Two facing mirrors around a matte sphere", NewMirrorsScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a registered scene
func Describe(name string) string {
	return registry[name].description
}

// ByName builds the scene registered under name
func ByName(name string) (*Scene, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := c.build()
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	s.Description = c.description
	return s, nil
}

// lookAt returns a camera config at position facing target
func lookAt(position, target core.Vec3, vfovDegrees float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:    position,
		Forward:     target.Subtract(position),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfovDegrees * math.Pi / 180,
		AspectRatio: 1.0,
		Near:        1.0,
	}
}

// builder collects shapes and remembers the first construction error
type builder struct {
	shapes []geometry.Shape
	err    error
}

func (b *builder) sphere(center core.Vec3, radius float64, material geometry.Material) {
	if b.err != nil {
		return
	}
	s, err := geometry.NewSphere(center, radius, material)
	if err != nil {
		b.err = err
		return
	}
	b.shapes = append(b.shapes, s)
}

func (b *builder) box(center, halfExtents, rotation core.Vec3, material geometry.Material) {
	if b.err != nil {
		return
	}
	box, err := geometry.NewRotatedBox(center, halfExtents, rotation, material)
	if err != nil {
		b.err = err
		return
	}
	b.shapes = append(b.shapes, box)
}

func (b *builder) world() (*world.World, error) {
	if b.err != nil {
		return nil, b.err
	}
	return world.NewWorld(b.shapes...), nil
}

// rgb converts 8-bit channel values into a linear color
func rgb(r, g, b float64) core.Vec3 {
	return core.NewVec3(r/255, g/255, b/255)
}
