package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/world"
)

// Palette is a cosine color palette: A + B*cos(2π(C*t + D)) per channel
type Palette struct {
	A, B, C, D core.Vec3
}

// DefaultPalette cycles through warm and teal tones
func DefaultPalette() Palette {
	return Palette{
		A: core.NewVec3(0.5, 0.5, 0.5),
		B: core.NewVec3(0.5, 0.5, 0.5),
		C: core.NewVec3(1.0, 1.0, 1.0),
		D: core.NewVec3(0.0, 0.33, 0.67),
	}
}

// At evaluates the palette at t
func (p Palette) At(t float64) core.Vec3 {
	channel := func(a, b, c, d float64) float64 {
		return a + b*math.Cos(2*math.Pi*(c*t+d))
	}
	return core.NewVec3(
		channel(p.A.X, p.B.X, p.C.X, p.D.X),
		channel(p.A.Y, p.B.Y, p.C.Y, p.D.Y),
		channel(p.A.Z, p.B.Z, p.C.Z, p.D.Z),
	)
}

// Shader turns cast results into colors. The weight a path accumulates
// through reflections only selects a palette entry; nothing here is
// physically based.
type Shader struct {
	Background   core.Vec3 // Paths that ran out of march steps
	Ambient      core.Vec3 // Empty worlds and abandoned mirror paths
	Fog          core.Vec3 // Paths stopped by the distance budget
	Palette      Palette
	PaletteScale float64 // Weight to palette parameter scale
}

// DefaultShader returns the shading used by the built-in scenes
func DefaultShader() Shader {
	return Shader{
		Background:   core.NewVec3(0.05, 0.05, 0.08),
		Ambient:      core.NewVec3(0.0, 0.0, 0.0),
		Fog:          core.NewVec3(0.6, 0.6, 0.65),
		Palette:      DefaultPalette(),
		PaletteScale: 0.05,
	}
}

// Shade returns the linear color for a cast result
func (s Shader) Shade(result world.CastResult) core.Vec3 {
	switch r := result.(type) {
	case *world.Hit:
		tint := s.Palette.At(r.Weight * s.PaletteScale)
		base := r.Shape.Material().Color.MultiplyVec(tint)
		if r.Capped() {
			return s.Fog.MultiplyVec(base).Add(s.Fog).Multiply(0.5)
		}
		facing := 0.25 + 0.75*math.Abs(r.Normal.Y)
		return base.Multiply(facing)
	case *world.Miss:
		return s.Background
	default:
		return s.Ambient
	}
}

// ToRGBA clamps a linear color to [0,1] and converts it to 8 bits per channel
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
