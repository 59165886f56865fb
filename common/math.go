package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SinDeg returns the sine of an angle given in degrees.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: sine of the angle
func SinDeg(deg float32) float32 {
	return float32(math.Sin(float64(mgl32.DegToRad(deg))))
}

// CosDeg returns the cosine of an angle given in degrees.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: cosine of the angle
func CosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

// Clamp restricts v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// WrapDegrees normalizes an angle into the half-open range [0, 360).
//
// Parameters:
//   - deg: angle in degrees, any magnitude
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	// float32 rounding of a tiny negative remainder can land exactly on 360
	if w >= 360 {
		w = 0
	}
	return w
}

// ForwardFromEuler returns the unit look direction for a pitch/yaw pair in degrees.
// Yaw 0 looks down +Z, yaw 90 down +X. Positive pitch tilts the view downward.
//
// Parameters:
//   - pitchDeg: vertical tilt in degrees
//   - yawDeg: horizontal heading in degrees
//
// Returns:
//   - mgl32.Vec3: the normalized forward vector
func ForwardFromEuler(pitchDeg, yawDeg float32) mgl32.Vec3 {
	cp := CosDeg(pitchDeg)
	return mgl32.Vec3{
		SinDeg(yawDeg) * cp,
		-SinDeg(pitchDeg),
		CosDeg(yawDeg) * cp,
	}
}

// BuildModelMatrix constructs a model matrix from position, Euler rotation in degrees, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). The result is column-major.
//
// Parameters:
//   - pos: translation in world space
//   - rotDeg: rotation angles in degrees around X, Y, Z
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func BuildModelMatrix(pos, rotDeg, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotDeg.Y()))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotDeg.X()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotDeg.Z()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(ry).Mul4(rx).Mul4(rz).Mul4(s)
}
