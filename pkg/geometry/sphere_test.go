package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raymarcher/pkg/core"
)

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, math.NaN()} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius, Material{}); err == nil {
			t.Errorf("Expected error for radius %v", radius)
		}
	}
}

func TestSphere_Distance(t *testing.T) {
	center := core.NewVec3(1, -2, 3)
	sphere, err := NewSphere(center, 2, NewMaterial(core.NewVec3(1, 0, 0), false))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"center", center, -2},
		{"surface +X", center.Add(core.NewVec3(2, 0, 0)), 0},
		{"surface -Y", center.Add(core.NewVec3(0, -2, 0)), 0},
		{"surface +Z", center.Add(core.NewVec3(0, 0, 2)), 0},
		{"halfway inside", center.Add(core.NewVec3(0, 1, 0)), -1},
		{"outside", center.Add(core.NewVec3(0, 0, -5)), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.Distance(tt.point)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestSphere_DistanceMonotonicOutside(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(0, 0, 0), 1, Material{})
	direction := core.NewVec3(1, 2, -0.5).Normalize()

	previous := sphere.Distance(direction.Multiply(1))
	for r := 1.25; r < 20; r += 0.25 {
		d := sphere.Distance(direction.Multiply(r))
		if d <= previous {
			t.Fatalf("Distance should increase with radius: r=%f gave %f after %f", r, d, previous)
		}
		previous = d
	}
}

func TestSphere_Material(t *testing.T) {
	material := NewMaterial(core.NewVec3(0.2, 0.4, 0.6), true)
	sphere, _ := NewSphere(core.NewVec3(0, 0, 0), 1, material)

	if sphere.Material() != material {
		t.Errorf("Expected material %v, got %v", material, sphere.Material())
	}
}
