package core

// Ray is one straight-line path segment. Besides origin and direction it
// carries the bookkeeping threaded through reflections: how many bounces
// produced it, the path length travelled before its origin, and the
// shading weight accumulated so far.
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit length
	Bounces   int
	Length    float64
	Weight    float64
}

// NewRay creates a primary ray with no bounce history
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Bounce returns the ray continuing a path after a reflection at distance t
// along r. The receiver is left untouched.
func (r Ray) Bounce(origin, direction Vec3, t float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		Bounces:   r.Bounces + 1,
		Length:    r.Length + t,
		Weight:    r.Weight + 1,
	}
}
