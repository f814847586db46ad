package world

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
)

// CastResult is the outcome of a cast: either a *Hit or a *Miss. A nil
// CastResult means there was nothing to cast against or the path was
// abandoned after too many reflections.
type CastResult interface {
	castResult()
}

// Hit is a path that ended on a non-reflective surface or ran out of
// distance budget. In the latter case Normal is the zero vector.
type Hit struct {
	Position core.Vec3      // Where the path ended
	Distance float64        // Distance travelled along the final segment
	Normal   core.Vec3      // Surface normal, zero when capped by distance
	Shape    geometry.Shape // Closest shape at the end of the path
	Bounces  int
	Length   float64 // Total path length including previous segments
	Weight   float64
}

// Miss is a path whose final segment used up its step budget without
// converging on a surface.
type Miss struct {
	Position core.Vec3
	Bounces  int
	Length   float64
	Weight   float64
}

func (*Hit) castResult()  {}
func (*Miss) castResult() {}

// Capped reports whether the hit was produced by the distance budget rather
// than by reaching geometry.
func (h *Hit) Capped() bool {
	return h.Normal.IsZero()
}
