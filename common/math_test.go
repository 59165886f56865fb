package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func approxVec3(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestSinCosDeg(t *testing.T) {
	tests := []struct {
		deg      float32
		sin, cos float32
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{30, 0.5, float32(math.Sqrt(3) / 2)},
	}
	for _, tc := range tests {
		if got := SinDeg(tc.deg); !approx(got, tc.sin) {
			t.Errorf("SinDeg(%v) = %v, want %v", tc.deg, got, tc.sin)
		}
		if got := CosDeg(tc.deg); !approx(got, tc.cos) {
			t.Errorf("CosDeg(%v) = %v, want %v", tc.deg, got, tc.cos)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 90); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := Clamp(120, 0, 90); got != 90 {
		t.Errorf("Clamp(120) = %v, want 90", got)
	}
	if got := Clamp(45, 0, 90); got != 45 {
		t.Errorf("Clamp(45) = %v, want 45", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
		{1085, 5},
	}
	for _, tc := range tests {
		got := WrapDegrees(tc.in)
		if !approx(got, tc.want) {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v out of [0, 360)", tc.in, got)
		}
	}
}

func TestForwardFromEuler(t *testing.T) {
	f := ForwardFromEuler(0, 0)
	if !approxVec3(f, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("forward(0,0) = %v, want +Z", f)
	}
	f = ForwardFromEuler(0, 90)
	if !approxVec3(f, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("forward(0,90) = %v, want +X", f)
	}
	f = ForwardFromEuler(90, 0)
	if !approxVec3(f, mgl32.Vec3{0, -1, 0}) {
		t.Errorf("forward(90,0) = %v, want -Y", f)
	}
	if l := ForwardFromEuler(37, 211).Len(); !approx(l, 1) {
		t.Errorf("forward length = %v, want 1", l)
	}
}

func TestBuildModelMatrix(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approxVec3(p.Vec3(), mgl32.Vec3{1, 2, 3}) {
		t.Errorf("translated origin = %v, want (1,2,3)", p)
	}

	m = BuildModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{2, 2, 2})
	p = m.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if !approxVec3(p.Vec3(), mgl32.Vec3{2, 0, 0}) {
		t.Errorf("yaw 90 of +Z scaled by 2 = %v, want (2,0,0)", p)
	}
}
