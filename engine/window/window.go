package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Window is a desktop window that reports resize, keyboard and mouse events.
type Window interface {
	// SetUpdateCallback registers a function run once per message loop pass. Nil disables it.
	SetUpdateCallback(callback func())

	// SetResizeCallback registers a function run with the new framebuffer size in pixels.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback registers a function run with the vertical wheel offset.
	// Positive offsets mean the wheel moved away from the user.
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback registers a function run on key press and key repeat.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback registers a function run on key release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseDownCallback registers a function run when any mouse button is pressed.
	// It receives the button code and the cursor position at the time of the press.
	SetMouseDownCallback(callback func(button uint32, x, y float64))

	// SetMouseUpCallback registers a function run when any mouse button is released.
	SetMouseUpCallback(callback func(button uint32, x, y float64))

	// SetMouseMoveCallback registers a function run with the cursor position,
	// measured from the top-left corner of the client area.
	SetMouseMoveCallback(callback func(x, y float64))

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once the window was closed by the user or by Close
	IsRunning() bool

	// Close destroys the window and shuts the platform layer down.
	//
	// Returns:
	//   - error: if the window was never created
	Close() error

	// ProcessMessages polls events until the window closes. It must run on the
	// goroutine that created the window.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// callbacks holds the host's event handlers. Any of them may be nil.
type callbacks struct {
	update    func()
	resize    func(width, height int)
	scroll    func(delta float32)
	keyDown   func(keyCode uint32)
	keyUp     func(keyCode uint32)
	mouseDown func(button uint32, x, y float64)
	mouseUp   func(button uint32, x, y float64)
	mouseMove func(x, y float64)
}

type engineWindow struct {
	title string

	minWidth, minHeight int
	maxWidth, maxHeight int

	// framebuffer size, refreshed on every resize
	width, height int

	platform *glfwWindow
	on       callbacks
}

var _ Window = &engineWindow{}

// A Window can feed an input.MouseState directly.
var _ input.EventSource = &engineWindow{}

// NewWindow opens a window configured by options. It panics when the platform
// layer cannot create one.
//
// Parameters:
//   - options: functional options applied over the defaults
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Oxy Orbit",
		minWidth:  600,
		minHeight: 200,
		maxWidth:  1600,
		maxHeight: 1200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	platform, err := openGLFWWindow(w)
	if err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	w.platform = platform
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.on.update = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.on.resize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.on.scroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.on.keyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.on.keyUp = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(button uint32, x, y float64)) {
	w.on.mouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(button uint32, x, y float64)) {
	w.on.mouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.on.mouseMove = callback
}

func (w *engineWindow) IsRunning() bool {
	return w.platform != nil && w.platform.isOpen()
}

func (w *engineWindow) Close() error {
	if w.platform == nil {
		return fmt.Errorf("window is not initialized")
	}
	w.platform.destroy()
	return nil
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !w.platform.poll() {
			break
		}
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// resized records a new framebuffer size and forwards it to the host.
func (w *engineWindow) resized(width, height int) {
	w.width = width
	w.height = height
	if w.on.resize != nil {
		w.on.resize(width, height)
	}
}
