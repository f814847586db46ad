package core

import (
	"math"
	"testing"
)

func TestMat3_RotationXYZ(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, math.Pi/2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, 0, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi, 0),
			expected: NewVec3(-1, 0, 0),
		},
		{
			name:     "Combined rotations",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, math.Pi/2), // 90° Y then 90° Z
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RotationXYZ(tt.rotation).MulVec(tt.vector)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestMat3_TransposeInvertsRotation(t *testing.T) {
	rotation := RotationXYZ(NewVec3(0.3, -1.1, 2.4))
	v := NewVec3(1.5, -2, 0.25)

	back := rotation.Transpose().MulVec(rotation.MulVec(v))
	if back.Subtract(v).Length() > 1e-12 {
		t.Errorf("Expected %v after round trip, got %v", v, back)
	}

	product := rotation.Transpose().Mul(rotation)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(product[i][j]-Identity[i][j]) > 1e-12 {
				t.Fatalf("Expected identity, got %v", product)
			}
		}
	}
}

func TestVec3_BoxHelpers(t *testing.T) {
	v := NewVec3(-3, 2, -0.5)

	if got := v.Abs(); got != NewVec3(3, 2, 0.5) {
		t.Errorf("Abs: expected (3,2,0.5), got %v", got)
	}
	if got := v.Max(Vec3{}); got != NewVec3(0, 2, 0) {
		t.Errorf("Max: expected (0,2,0), got %v", got)
	}
	if got := v.MaxComponent(); got != 2 {
		t.Errorf("MaxComponent: expected 2, got %f", got)
	}
	if got := v.MinComponent(); got != -3 {
		t.Errorf("MinComponent: expected -3, got %f", got)
	}
	if !(Vec3{}).IsZero() || v.IsZero() {
		t.Error("IsZero reported the wrong result")
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := NewVec3(0, 3, 4).Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", got)
	}
}

func TestRay_Bounce(t *testing.T) {
	ray := Ray{
		Origin:    NewVec3(0, 0, 0),
		Direction: NewVec3(0, 0, 1),
		Bounces:   2,
		Length:    3.5,
		Weight:    2,
	}

	next := ray.Bounce(NewVec3(0, 0, 4), NewVec3(0, 0, -1), 4)

	if next.Bounces != 3 || next.Length != 7.5 || next.Weight != 3 {
		t.Errorf("Unexpected bookkeeping after bounce: %+v", next)
	}
	if ray.Bounces != 2 || ray.Length != 3.5 || ray.Weight != 2 {
		t.Errorf("Bounce must not modify the original ray: %+v", ray)
	}
	if got := ray.At(2); got != NewVec3(0, 0, 2) {
		t.Errorf("At(2): expected (0,0,2), got %v", got)
	}
}
