package world

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
)

// Reflect mirrors a about the normal n: a - 2(a·n)n
func Reflect(a, n core.Vec3) core.Vec3 {
	return a.Subtract(n.Multiply(2 * a.Dot(n)))
}

// Cast sphere traces ray through the world. maxDistance caps the total path
// length over all reflections of the ray.
func (w *World) Cast(ray core.Ray, maxDistance float64) CastResult {
	if len(w.shapes) == 0 {
		return nil
	}
	return w.march(ray, maxDistance)
}

// march traces one straight segment and recurses on reflection. Recursion
// depth equals the bounce count, which MaxBounces bounds.
func (w *World) march(ray core.Ray, maxDistance float64) CastResult {
	epsilon := w.config.Epsilon
	t := 0.0

	for step := 0; step < w.config.MaxSteps; step++ {
		minDist, shape := w.closest(ray.At(t))
		t += minDist

		if ray.Length+t > maxDistance {
			return &Hit{
				Position: ray.At(t),
				Distance: t,
				Shape:    shape,
				Bounces:  ray.Bounces,
				Length:   ray.Length + t,
				Weight:   ray.Weight,
			}
		}

		if minDist >= epsilon {
			continue
		}

		position := ray.At(t)
		normal := geometry.Normal(shape, position)

		if !shape.Material().Reflective {
			return &Hit{
				Position: position,
				Distance: t,
				Normal:   normal,
				Shape:    shape,
				Bounces:  ray.Bounces,
				Length:   ray.Length + t,
				Weight:   ray.Weight,
			}
		}

		if ray.Bounces > w.config.MaxBounces {
			return nil
		}

		direction := Reflect(ray.Direction, normal).Normalize()
		origin := position.Add(direction.Multiply(2 * epsilon))
		return w.march(ray.Bounce(origin, direction, t), maxDistance)
	}

	return &Miss{
		Position: ray.At(t),
		Bounces:  ray.Bounces,
		Length:   ray.Length + t,
		Weight:   ray.Weight,
	}
}
