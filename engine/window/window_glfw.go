package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow owns the GLFW handle behind an engineWindow.
type glfwWindow struct {
	handle  *glfw.Window
	running bool
}

// openGLFWWindow initializes GLFW, creates a window without a client API and
// routes its events into w's callbacks. GLFW pins the calling goroutine to its thread.
func openGLFWWindow(w *engineWindow) (*glfwWindow, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	handle.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{handle: handle, running: true}
	gw.route(w)

	// high-DPI framebuffers can be larger than the requested size
	w.width, w.height = handle.GetFramebufferSize()
	return gw, nil
}

// route installs the GLFW callbacks that feed w. Escape always closes the window.
func (gw *glfwWindow) route(w *engineWindow) {
	gw.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			gw.handle.SetShouldClose(true)
			return
		}
		switch {
		case action == glfw.Release && w.on.keyUp != nil:
			w.on.keyUp(uint32(key))
		case action != glfw.Release && w.on.keyDown != nil:
			w.on.keyDown(uint32(key))
		}
	})

	gw.handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.on.scroll != nil {
			w.on.scroll(float32(yoff))
		}
	})

	gw.handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		cb := w.on.mouseDown
		if action == glfw.Release {
			cb = w.on.mouseUp
		}
		if cb != nil {
			x, y := win.GetCursorPos()
			cb(uint32(button), x, y)
		}
	})

	gw.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.on.mouseMove != nil {
			w.on.mouseMove(x, y)
		}
	})

	gw.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})
}

func (gw *glfwWindow) isOpen() bool {
	return gw.running && gw.handle != nil && !gw.handle.ShouldClose()
}

// poll drains pending events without blocking and reports whether the window is still open.
func (gw *glfwWindow) poll() bool {
	glfw.PollEvents()
	return gw.isOpen()
}

func (gw *glfwWindow) destroy() {
	if gw.handle == nil {
		return
	}
	gw.running = false
	gw.handle.SetShouldClose(true)
	gw.handle.Destroy()
	gw.handle = nil
	glfw.Terminate()
}
