package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func nearVec3(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func nearMat4(a, b mgl32.Mat4) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestClampPitch(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-30, 0},
		{0, 0},
		{45, 45},
		{90, 90},
		{135, 90},
	}
	for _, tc := range tests {
		if got := ClampPitch(tc.in); got != tc.want {
			t.Errorf("ClampPitch(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := ClampPitch(float32(math.NaN())); got != MinPitch {
		t.Errorf("ClampPitch(NaN) = %v, want %v", got, MinPitch)
	}
}

func TestHorizontalVerticalDistance(t *testing.T) {
	tests := []struct {
		name     string
		pitch    float32
		distance float32
		wantH    float32
		wantV    float32
	}{
		{"level", 0, 10, 10, 0},
		{"overhead", 90, 10, 0, 10},
		{"thirty degrees", 30, 10, 8.660254, 5},
		{"zero radius", 45, 0, 0, 0},
		{"negative radius", 0, -4, -4, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HorizontalDistance(tc.pitch, tc.distance); !near(got, tc.wantH) {
				t.Errorf("HorizontalDistance = %v, want %v", got, tc.wantH)
			}
			if got := VerticalDistance(tc.pitch, tc.distance); !near(got, tc.wantV) {
				t.Errorf("VerticalDistance = %v, want %v", got, tc.wantV)
			}
		})
	}
}

func TestOrbitPosition(t *testing.T) {
	tests := []struct {
		name                string
		tx, ty, tz          float32
		targetYaw, angle    float32
		h, v                float32
		wantX, wantY, wantZ float32
		wantYaw             float32
	}{
		{"behind along -Z", 0, 0, 0, 0, 0, 5, 0, 0, 0, -5, 0},
		{"target yaw 90", 0, 0, 0, 90, 0, 5, 0, -5, 0, 0, 90},
		{"orbit 180", 0, 0, 0, 0, 180, 5, 0, 0, 0, 5, 180},
		{"offset target with height", 1, 2, 3, 45, 45, 4, 3, -3, 5, 3, 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z, yaw := OrbitPosition(tc.tx, tc.ty, tc.tz, tc.targetYaw, tc.angle, tc.h, tc.v)
			if !near(x, tc.wantX) || !near(y, tc.wantY) || !near(z, tc.wantZ) {
				t.Errorf("position = (%v,%v,%v), want (%v,%v,%v)", x, y, z, tc.wantX, tc.wantY, tc.wantZ)
			}
			if yaw != tc.wantYaw {
				t.Errorf("yaw = %v, want %v", yaw, tc.wantYaw)
			}
		})
	}
}
