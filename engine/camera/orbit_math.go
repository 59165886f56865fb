package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// Pitch limits in degrees. Zero is level with the target, 90 is straight overhead.
const (
	MinPitch float32 = 0
	MaxPitch float32 = 90
)

// ClampPitch restricts a pitch angle to [MinPitch, MaxPitch]. NaN maps to MinPitch.
//
// Parameters:
//   - pitch: pitch in degrees
//
// Returns:
//   - float32: the clamped pitch
func ClampPitch(pitch float32) float32 {
	if math.IsNaN(float64(pitch)) {
		return MinPitch
	}
	return common.Clamp(pitch, MinPitch, MaxPitch)
}

// HorizontalDistance returns the ground-plane component of an orbit radius at the given pitch.
//
// Parameters:
//   - pitch: elevation angle in degrees
//   - distance: orbit radius
//
// Returns:
//   - float32: cos(pitch) * distance
func HorizontalDistance(pitch, distance float32) float32 {
	return common.CosDeg(pitch) * distance
}

// VerticalDistance returns the height component of an orbit radius at the given pitch.
//
// Parameters:
//   - pitch: elevation angle in degrees
//   - distance: orbit radius
//
// Returns:
//   - float32: sin(pitch) * distance
func VerticalDistance(pitch, distance float32) float32 {
	return common.SinDeg(pitch) * distance
}

// OrbitPosition places the camera behind the target's heading rotated by the orbit angle.
// The camera sits hDist back along the combined heading and vDist above the target.
//
// Parameters:
//   - tx, ty, tz: target world position
//   - targetYaw: target yaw in degrees
//   - angle: orbit offset around the target in degrees
//   - hDist: horizontal distance from the target
//   - vDist: vertical distance above the target
//
// Returns:
//   - x, y, z: camera world position
//   - yaw: camera yaw in degrees (targetYaw + angle)
func OrbitPosition(tx, ty, tz, targetYaw, angle, hDist, vDist float32) (x, y, z, yaw float32) {
	yaw = targetYaw + angle
	offsetX := common.SinDeg(yaw) * hDist
	offsetZ := common.CosDeg(yaw) * hDist
	return tx - offsetX, ty + vDist, tz - offsetZ, yaw
}
