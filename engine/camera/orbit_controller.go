package camera

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

var (
	// ErrMissingTarget is returned when an OrbitController is built without a target.
	// Only an untyped nil is detected; an interface holding a nil pointer is accepted
	// and fails on first use.
	ErrMissingTarget = errors.New("orbit target is nil")
	// ErrMissingTransform is returned when an OrbitController is built without a camera transform.
	ErrMissingTransform = errors.New("camera transform is nil")
	// ErrMissingInput is returned when an OrbitController is built without an input source.
	ErrMissingInput = errors.New("input source is nil")
)

// OrbitController drives a third-person camera around a target from mouse input.
// Each Update reads one frame of input, adjusts pitch, orbit angle and distance, then
// writes the derived position and orientation to the camera transform.
// All angles are in degrees.
type OrbitController interface {
	// Update runs one frame: zoom, pitch, orbit angle, then position and orientation.
	// Call once per tick after the input source has been advanced.
	Update()

	// Speed returns the multiplier applied to every input axis.
	//
	// Returns:
	//   - float32: input speed multiplier
	Speed() float32

	// SetSpeed sets the multiplier applied to every input axis.
	//
	// Parameters:
	//   - speed: new multiplier
	SetSpeed(speed float32)

	// Pitch returns the current vertical angle, always within [MinPitch, MaxPitch].
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetPitch sets the vertical angle, clamped to [MinPitch, MaxPitch].
	//
	// Parameters:
	//   - pitch: pitch in degrees
	SetPitch(pitch float32)

	// Yaw returns the camera heading written by the last Update
	// (target yaw plus orbit angle).
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// AngleAroundTarget returns the accumulated orbit offset from the target's heading.
	//
	// Returns:
	//   - float32: orbit angle in degrees
	AngleAroundTarget() float32

	// SetAngleAroundTarget sets the orbit offset from the target's heading.
	//
	// Parameters:
	//   - angle: orbit angle in degrees
	SetAngleAroundTarget(angle float32)

	// DistanceFromTarget returns the orbit radius.
	//
	// Returns:
	//   - float32: distance in world units
	DistanceFromTarget() float32

	// SetDistanceFromTarget sets the orbit radius, subject to distance bounds if configured.
	//
	// Parameters:
	//   - distance: distance in world units
	SetDistanceFromTarget(distance float32)

	// HorizontalDistance returns the ground-plane component of the current radius.
	//
	// Returns:
	//   - float32: horizontal distance
	HorizontalDistance() float32

	// VerticalDistance returns the height component of the current radius.
	//
	// Returns:
	//   - float32: vertical distance
	VerticalDistance() float32

	// Target returns the orbited transform.
	//
	// Returns:
	//   - Target: the orbit target
	Target() Target

	// SetTarget replaces the orbited transform. An untyped nil target is rejected.
	//
	// Parameters:
	//   - target: new orbit target
	//
	// Returns:
	//   - error: ErrMissingTarget if target is nil
	SetTarget(target Target) error

	// Transform returns the camera transform written by Update.
	//
	// Returns:
	//   - Transform: the camera transform
	Transform() Transform

	// Input returns the input source read by Update.
	//
	// Returns:
	//   - input.Input: the input source
	Input() input.Input
}

type orbitControllerImpl struct {
	mu *sync.Mutex

	target    Target
	transform Transform
	input     input.Input

	speed              float32
	pitch              float32
	yaw                float32
	angleAroundTarget  float32
	distanceFromTarget float32

	// Optional distance clamp; disabled unless set via WithDistanceBounds.
	boundDistance bool
	minDistance   float32
	maxDistance   float32

	wrapAngle bool
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an OrbitController. Target, camera transform and input are required.
// Defaults: speed 1, pitch 20, distance 10, orbit angle 0, unbounded distance, no angle wrap.
// The camera transform is not touched until the first Update.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
//   - error: an error wrapping ErrMissingTarget, ErrMissingTransform or ErrMissingInput
func NewOrbitController(options ...OrbitControllerOption) (OrbitController, error) {
	oc := &orbitControllerImpl{
		mu:                 &sync.Mutex{},
		speed:              1,
		pitch:              20,
		distanceFromTarget: 10,
	}
	for _, option := range options {
		option(oc)
	}

	if oc.target == nil {
		return nil, fmt.Errorf("failed to create orbit controller: %w", ErrMissingTarget)
	}
	if oc.transform == nil {
		return nil, fmt.Errorf("failed to create orbit controller: %w", ErrMissingTransform)
	}
	if oc.input == nil {
		return nil, fmt.Errorf("failed to create orbit controller: %w", ErrMissingInput)
	}
	if oc.boundDistance && oc.minDistance > oc.maxDistance {
		return nil, fmt.Errorf("failed to create orbit controller: min distance %v exceeds max %v", oc.minDistance, oc.maxDistance)
	}

	oc.pitch = ClampPitch(oc.pitch)
	oc.distanceFromTarget = oc.boundedDistance(oc.distanceFromTarget)
	if oc.wrapAngle {
		oc.angleAroundTarget = common.WrapDegrees(oc.angleAroundTarget)
	}
	_, targetYaw, _ := oc.target.Rotation()
	oc.yaw = targetYaw + oc.angleAroundTarget
	return oc, nil
}

func (oc *orbitControllerImpl) Update() {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	in := input.Read(oc.input)

	if finite(in.Scroll) {
		oc.distanceFromTarget = oc.boundedDistance(oc.distanceFromTarget - in.Scroll*oc.speed)
	}

	if in.PrimaryHeld {
		if finite(in.DeltaY) {
			oc.pitch = ClampPitch(oc.pitch - in.DeltaY*oc.speed)
		}
		if finite(in.DeltaX) {
			oc.angleAroundTarget += in.DeltaX * oc.speed
		}
		if oc.wrapAngle {
			oc.angleAroundTarget = common.WrapDegrees(oc.angleAroundTarget)
		}
	}

	hDist := HorizontalDistance(oc.pitch, oc.distanceFromTarget)
	vDist := VerticalDistance(oc.pitch, oc.distanceFromTarget)

	tx, ty, tz := oc.target.Position()
	_, targetYaw, _ := oc.target.Rotation()
	x, y, z, yaw := OrbitPosition(tx, ty, tz, targetYaw, oc.angleAroundTarget, hDist, vDist)
	oc.yaw = yaw

	_, _, roll := oc.transform.Rotation()
	oc.transform.SetPosition(x, y, z)
	oc.transform.SetRotation(oc.pitch, oc.yaw, roll)
}

func (oc *orbitControllerImpl) Speed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.speed
}

func (oc *orbitControllerImpl) SetSpeed(speed float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.speed = speed
}

func (oc *orbitControllerImpl) Pitch() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pitch
}

func (oc *orbitControllerImpl) SetPitch(pitch float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.pitch = ClampPitch(pitch)
}

func (oc *orbitControllerImpl) Yaw() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.yaw
}

func (oc *orbitControllerImpl) AngleAroundTarget() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.angleAroundTarget
}

func (oc *orbitControllerImpl) SetAngleAroundTarget(angle float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.wrapAngle {
		angle = common.WrapDegrees(angle)
	}
	oc.angleAroundTarget = angle
}

func (oc *orbitControllerImpl) DistanceFromTarget() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.distanceFromTarget
}

func (oc *orbitControllerImpl) SetDistanceFromTarget(distance float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.distanceFromTarget = oc.boundedDistance(distance)
}

func (oc *orbitControllerImpl) HorizontalDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return HorizontalDistance(oc.pitch, oc.distanceFromTarget)
}

func (oc *orbitControllerImpl) VerticalDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return VerticalDistance(oc.pitch, oc.distanceFromTarget)
}

func (oc *orbitControllerImpl) Target() Target {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControllerImpl) SetTarget(target Target) error {
	if target == nil {
		return ErrMissingTarget
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = target
	return nil
}

func (oc *orbitControllerImpl) Transform() Transform {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.transform
}

func (oc *orbitControllerImpl) Input() input.Input {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.input
}

// finite reports whether an input delta can be folded into controller state.
// NaN and infinite deltas are dropped for the frame.
func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// boundedDistance applies the optional distance clamp.
// Caller must hold the mutex or be the constructor.
func (oc *orbitControllerImpl) boundedDistance(d float32) float32 {
	if !oc.boundDistance {
		return d
	}
	return common.Clamp(d, oc.minDistance, oc.maxDistance)
}
