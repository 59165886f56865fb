package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// MouseState accumulates raw window mouse events and exposes them as per-frame Input.
// Event methods may be called from the window thread while the tick loop reads the
// latched frame; all access is serialized by an internal mutex.
type MouseState interface {
	Snapshotter

	// OnScroll records a scroll-wheel event.
	//
	// Parameters:
	//   - delta: raw wheel offset (positive = scroll up)
	OnScroll(delta float32)

	// OnButtonDown records a mouse button press at the given cursor position.
	//
	// Parameters:
	//   - button: GLFW mouse button code
	//   - x, y: cursor position in window coordinates
	OnButtonDown(button uint32, x, y float64)

	// OnButtonUp records a mouse button release at the given cursor position.
	//
	// Parameters:
	//   - button: GLFW mouse button code
	//   - x, y: cursor position in window coordinates
	OnButtonUp(button uint32, x, y float64)

	// OnCursorMove records a cursor position change in window coordinates
	// (origin top-left, Y growing downward).
	//
	// Parameters:
	//   - x, y: new cursor position
	OnCursorMove(x, y float64)

	// NextFrame latches everything accumulated since the previous call into the frame
	// returned by the Input methods, then clears the accumulation.
	// Call once per tick before any consumer reads the Input.
	NextFrame()

	// Reset discards accumulated motion, the latched frame, and the cursor reference.
	// The held state of the primary button is kept.
	Reset()

	// Attach registers this MouseState as the handler for a window's mouse callbacks.
	//
	// Parameters:
	//   - src: the event source to subscribe to
	Attach(src EventSource)
}

// EventSource is the subset of a window needed to feed a MouseState.
type EventSource interface {
	SetScrollCallback(callback func(delta float32))
	SetMouseDownCallback(callback func(button uint32, x, y float64))
	SetMouseUpCallback(callback func(button uint32, x, y float64))
	SetMouseMoveCallback(callback func(x, y float64))
}

type mouseStateImpl struct {
	mu *sync.Mutex

	primaryButton uint32
	axisScale     float32
	scrollScale   float32
	invertY       bool

	pendingScroll float32
	pendingX      float32
	pendingY      float32
	held          bool

	lastX, lastY float64
	hasCursor    bool

	current Frame
}

var _ MouseState = &mouseStateImpl{}

// NewMouseState creates a MouseState with defaults matching common desktop axis feel:
// left button as primary, 0.1 axis units per pixel, 0.1 scroll units per wheel notch.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - MouseState: the newly created mouse state
func NewMouseState(options ...MouseStateOption) MouseState {
	m := &mouseStateImpl{
		mu:            &sync.Mutex{},
		primaryButton: common.MouseButtonLeft,
		axisScale:     0.1,
		scrollScale:   0.1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mouseStateImpl) ScrollDelta() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Scroll
}

func (m *mouseStateImpl) PrimaryButtonHeld() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.PrimaryHeld
}

func (m *mouseStateImpl) MouseDeltaX() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.DeltaX
}

func (m *mouseStateImpl) MouseDeltaY() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.DeltaY
}

func (m *mouseStateImpl) Snapshot() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *mouseStateImpl) OnScroll(delta float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingScroll += delta * m.scrollScale
}

func (m *mouseStateImpl) OnButtonDown(button uint32, x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveCursor(x, y)
	if button == m.primaryButton {
		m.held = true
	}
}

func (m *mouseStateImpl) OnButtonUp(button uint32, x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveCursor(x, y)
	if button == m.primaryButton {
		m.held = false
	}
}

func (m *mouseStateImpl) OnCursorMove(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveCursor(x, y)
}

func (m *mouseStateImpl) NextFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Frame{
		Scroll:      m.pendingScroll,
		PrimaryHeld: m.held,
		DeltaX:      m.pendingX,
		DeltaY:      m.pendingY,
	}
	m.pendingScroll = 0
	m.pendingX = 0
	m.pendingY = 0
}

func (m *mouseStateImpl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingScroll = 0
	m.pendingX = 0
	m.pendingY = 0
	m.hasCursor = false
	m.current = Frame{}
}

func (m *mouseStateImpl) Attach(src EventSource) {
	src.SetScrollCallback(m.OnScroll)
	src.SetMouseDownCallback(m.OnButtonDown)
	src.SetMouseUpCallback(m.OnButtonUp)
	src.SetMouseMoveCallback(m.OnCursorMove)
}

// moveCursor accumulates axis motion relative to the last known cursor position.
// The first observed position only seeds the reference.
// Caller must hold the mutex.
func (m *mouseStateImpl) moveCursor(x, y float64) {
	if m.hasCursor {
		dx := float32(x-m.lastX) * m.axisScale
		// window Y grows downward; the axis reports upward motion as positive
		dy := float32(m.lastY-y) * m.axisScale
		if m.invertY {
			dy = -dy
		}
		m.pendingX += dx
		m.pendingY += dy
	}
	m.lastX, m.lastY = x, y
	m.hasCursor = true
}
