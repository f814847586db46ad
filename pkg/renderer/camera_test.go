package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raymarcher/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, 0),
		Forward:     core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        math.Pi / 2,
		AspectRatio: 2.0,
		Near:        1.0,
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestNewCamera_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		forward core.Vec3
		up      core.Vec3
	}{
		{"zero forward", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)},
		{"zero up", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 0)},
		{"parallel", core.NewVec3(0, 1, 0), core.NewVec3(0, 2, 0)},
		{"anti-parallel", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			config.Forward = tt.forward
			config.Up = tt.up
			if _, err := NewCamera(config); !errors.Is(err, ErrDegenerateBasis) {
				t.Errorf("Expected ErrDegenerateBasis, got %v", err)
			}
		})
	}
}

func TestCamera_BasisCorrectsUpHint(t *testing.T) {
	config := testCameraConfig()
	config.Forward = core.NewVec3(0, 0, -2)
	config.Up = core.NewVec3(0, 1, -1) // Not orthogonal to forward

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	forward, right, up := camera.Basis()
	if !vecNear(forward, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected normalized forward, got %v", forward)
	}
	if !vecNear(right, core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected right (1,0,0), got %v", right)
	}
	if !vecNear(up, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected corrected up (0,1,0), got %v", up)
	}
	if math.Abs(up.Dot(forward)) > 1e-12 || math.Abs(right.Dot(forward)) > 1e-12 {
		t.Error("Basis is not orthogonal")
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// tan(45°) * near = 1, aspect 2: horizontal offsets reach ±1, vertical ±0.5
	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"top edge", 0.5, 0, core.NewVec3(0, 0.5, -1).Normalize()},
		{"bottom edge", 0.5, 1, core.NewVec3(0, -0.5, -1).Normalize()},
		{"left edge", 0, 0.5, core.NewVec3(-1, 0, -1).Normalize()},
		{"right edge", 1, 0.5, core.NewVec3(1, 0, -1).Normalize()},
		{"top right corner", 1, 0, core.NewVec3(1, 0.5, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.x, tt.y)
			if !vecNear(ray.Direction, tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected origin at camera position, got %v", ray.Origin)
			}
			if ray.Bounces != 0 || ray.Length != 0 || ray.Weight != 0 {
				t.Errorf("Primary ray should carry no history: %+v", ray)
			}
		})
	}
}

func TestCamera_GetRayTranslatedPosition(t *testing.T) {
	config := testCameraConfig()
	config.Position = core.NewVec3(3, -2, 7)
	camera, _ := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != config.Position {
		t.Errorf("Expected origin %v, got %v", config.Position, ray.Origin)
	}
	if !vecNear(ray.Direction, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Direction should not depend on position, got %v", ray.Direction)
	}
}
