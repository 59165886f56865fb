package camera

// Target is the read-only view of a transform the controller orbits.
// Rotation is Euler degrees; only the Y component (yaw) is consumed.
type Target interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: world-space coordinates
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation in degrees.
	//
	// Returns:
	//   - rx, ry, rz: pitch, yaw, and roll in degrees
	Rotation() (rx, ry, rz float32)
}

// Transform is the camera's own transform, written once per Update.
type Transform interface {
	Target

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in degrees.
	//
	// Parameters:
	//   - rx, ry, rz: pitch, yaw, and roll in degrees
	SetRotation(rx, ry, rz float32)
}
