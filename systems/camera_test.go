package systems

import (
	"testing"

	"github.com/automoto/sidescroller/components"
	"github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
)

// settle runs follow until the scroll finishes.
func settle(camera *components.CameraData, target gamemath.HitBox, mapWidth, viewWidth float64) {
	for range 1000 {
		follow(camera, target, mapWidth, viewWidth, 1.0/60)
		if camera.ScrollX == nil {
			return
		}
	}
}

func TestCameraStaysInsideDeadZone(t *testing.T) {
	camera := &components.CameraData{}
	target := gamemath.MustHitBox(320-12+config.Camera.DeadZoneX-1, 0, 24, 40)

	settle(camera, target, 2000, 640)

	if camera.Position.X != 0 {
		t.Errorf("camera moved to %v for a target inside the dead zone", camera.Position.X)
	}
}

func TestCameraScrollsToTarget(t *testing.T) {
	camera := &components.CameraData{}
	target := gamemath.MustHitBox(1000, 0, 20, 40)

	follow(camera, target, 2000, 640, 1.0/60)
	if camera.ScrollX == nil {
		t.Fatal("expected a scroll to start")
	}
	if camera.Position.X <= 0 || camera.Position.X >= 690 {
		t.Errorf("first step at %v, want between start and goal", camera.Position.X)
	}

	settle(camera, target, 2000, 640)
	if camera.Position.X != 690 {
		t.Errorf("camera settled at %v, want 690", camera.Position.X)
	}
}

func TestCameraClampsToMap(t *testing.T) {
	tests := []struct {
		name     string
		targetX  float64
		mapWidth float64
		want     float64
	}{
		{"left edge", -500, 2000, 0},
		{"right edge", 1990, 2000, 1360},
		{"map narrower than view", 600, 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := &components.CameraData{}
			settle(camera, gamemath.MustHitBox(tt.targetX, 0, 10, 10), tt.mapWidth, 640)
			if camera.Position.X != tt.want {
				t.Errorf("camera at %v, want %v", camera.Position.X, tt.want)
			}
		})
	}
}

func TestCameraOffset(t *testing.T) {
	var nilCamera *components.CameraData
	if dx, dy := nilCamera.Offset(); dx != 0 || dy != 0 {
		t.Errorf("nil camera offset = %v, %v", dx, dy)
	}
	camera := &components.CameraData{}
	camera.Position.X, camera.Position.Y = 30, 5
	if dx, dy := camera.Offset(); dx != -30 || dy != -5 {
		t.Errorf("offset = %v, %v", dx, dy)
	}
}
