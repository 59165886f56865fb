package input

// Input is the per-frame mouse signal source consumed by camera controllers.
// Implementations return the same values for every call within a single frame.
type Input interface {
	// ScrollDelta returns the scroll-wheel movement for the current frame.
	// Positive values mean the wheel was scrolled up (away from the user).
	//
	// Returns:
	//   - float32: scroll axis value
	ScrollDelta() float32

	// PrimaryButtonHeld reports whether the primary mouse button is currently held.
	//
	// Returns:
	//   - bool: true while the button is down
	PrimaryButtonHeld() bool

	// MouseDeltaX returns horizontal mouse movement for the current frame.
	// Positive values mean the mouse moved right.
	//
	// Returns:
	//   - float32: horizontal axis delta
	MouseDeltaX() float32

	// MouseDeltaY returns vertical mouse movement for the current frame.
	// Positive values mean the mouse moved up.
	//
	// Returns:
	//   - float32: vertical axis delta
	MouseDeltaY() float32
}

// Snapshotter is an Input that can hand out all four signals in one consistent read.
type Snapshotter interface {
	Input

	// Snapshot returns the current frame as a single value.
	//
	// Returns:
	//   - Frame: the four signals read together
	Snapshot() Frame
}

// Read returns the current frame of in. A Snapshotter is read once so the signals
// cannot straddle two latched frames; any other Input is read method by method.
//
// Parameters:
//   - in: the input source
//
// Returns:
//   - Frame: the signals for this frame
func Read(in Input) Frame {
	if s, ok := in.(Snapshotter); ok {
		return s.Snapshot()
	}
	return Frame{
		Scroll:      in.ScrollDelta(),
		PrimaryHeld: in.PrimaryButtonHeld(),
		DeltaX:      in.MouseDeltaX(),
		DeltaY:      in.MouseDeltaY(),
	}
}

// Frame is a fixed snapshot of the four mouse signals.
// It is useful for scripted input and for tests.
type Frame struct {
	Scroll      float32
	PrimaryHeld bool
	DeltaX      float32
	DeltaY      float32
}

var _ Snapshotter = Frame{}

func (f Frame) ScrollDelta() float32 {
	return f.Scroll
}

func (f Frame) PrimaryButtonHeld() bool {
	return f.PrimaryHeld
}

func (f Frame) MouseDeltaX() float32 {
	return f.DeltaX
}

func (f Frame) MouseDeltaY() float32 {
	return f.DeltaY
}

func (f Frame) Snapshot() Frame {
	return f
}
