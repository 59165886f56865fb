package input

// MouseStateOption is a functional option for configuring a MouseState.
type MouseStateOption func(*mouseStateImpl)

// WithPrimaryButton selects which mouse button drives PrimaryButtonHeld.
//
// Parameters:
//   - button: GLFW mouse button code (see common.MouseButton*)
//
// Returns:
//   - MouseStateOption: functional option to set the primary button
func WithPrimaryButton(button uint32) MouseStateOption {
	return func(m *mouseStateImpl) {
		m.primaryButton = button
	}
}

// WithAxisScale sets how many axis units one pixel of cursor motion produces.
//
// Parameters:
//   - scale: axis units per pixel
//
// Returns:
//   - MouseStateOption: functional option to set the axis scale
func WithAxisScale(scale float32) MouseStateOption {
	return func(m *mouseStateImpl) {
		m.axisScale = scale
	}
}

// WithScrollScale sets how many scroll units one wheel notch produces.
//
// Parameters:
//   - scale: scroll units per notch
//
// Returns:
//   - MouseStateOption: functional option to set the scroll scale
func WithScrollScale(scale float32) MouseStateOption {
	return func(m *mouseStateImpl) {
		m.scrollScale = scale
	}
}

// WithInvertY flips the vertical axis so downward motion reads as positive.
//
// Parameters:
//   - invert: true to invert the Y axis
//
// Returns:
//   - MouseStateOption: functional option to set Y inversion
func WithInvertY(invert bool) MouseStateOption {
	return func(m *mouseStateImpl) {
		m.invertY = invert
	}
}
