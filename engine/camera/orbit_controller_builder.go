package camera

import "github.com/Carmen-Shannon/oxy-orbit/engine/input"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget sets the transform the camera orbits. Required.
//
// Parameters:
//   - target: the orbit target
//
// Returns:
//   - OrbitControllerOption: functional option to set the target
func WithTarget(target Target) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target = target
	}
}

// WithTransform sets the camera transform written each Update. Required.
//
// Parameters:
//   - transform: the camera's own transform
//
// Returns:
//   - OrbitControllerOption: functional option to set the camera transform
func WithTransform(transform Transform) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.transform = transform
	}
}

// WithInput sets the per-frame input source. Required.
//
// Parameters:
//   - in: the input source
//
// Returns:
//   - OrbitControllerOption: functional option to set the input source
func WithInput(in input.Input) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.input = in
	}
}

// WithSpeed sets the multiplier applied to scroll and mouse axes.
//
// Parameters:
//   - speed: input speed multiplier
//
// Returns:
//   - OrbitControllerOption: functional option to set the speed
func WithSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.speed = speed
	}
}

// WithPitch sets the initial pitch in degrees. Values outside [0, 90] are clamped.
//
// Parameters:
//   - pitch: initial pitch in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the pitch
func WithPitch(pitch float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pitch = pitch
	}
}

// WithDistanceFromTarget sets the initial orbit radius.
//
// Parameters:
//   - distance: initial distance in world units
//
// Returns:
//   - OrbitControllerOption: functional option to set the distance
func WithDistanceFromTarget(distance float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.distanceFromTarget = distance
	}
}

// WithAngleAroundTarget sets the initial orbit offset from the target's heading.
//
// Parameters:
//   - angle: initial orbit angle in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the orbit angle
func WithAngleAroundTarget(angle float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.angleAroundTarget = angle
	}
}

// WithDistanceBounds clamps the orbit radius to [min, max] after every change.
// Without this option the radius is unbounded and may reach zero or go negative.
//
// Parameters:
//   - min: minimum distance
//   - max: maximum distance
//
// Returns:
//   - OrbitControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.boundDistance = true
		oc.minDistance = min
		oc.maxDistance = max
	}
}

// WithAngleWrap normalizes the orbit angle into [0, 360) after every change.
// Without this option the angle accumulates without bound.
//
// Parameters:
//   - wrap: true to enable wrapping
//
// Returns:
//   - OrbitControllerOption: functional option to set angle wrapping
func WithAngleWrap(wrap bool) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.wrapAngle = wrap
	}
}
