package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clay"
)

// PointerAdapter feeds GLFW cursor and left-button state into a
// clay.Context once per frame.
type PointerAdapter struct {
	window   *glfw.Window
	position clay.Vector2
	down     bool
}

// NewPointerAdapter creates an adapter and installs its callbacks on window.
func NewPointerAdapter(window *glfw.Window) *PointerAdapter {
	a := &PointerAdapter{window: window}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update polls the cursor and applies it to ctx with SetPointerState.
// Call it after glfw.PollEvents and before BeginLayout.
func (a *PointerAdapter) Update(ctx *clay.Context) clay.PointerData {
	x, y := a.window.GetCursorPos()
	a.position = cursorToLayout(x, y, a.contentScale())
	ctx.SetPointerState(a.position, a.down)
	return ctx.Pointer()
}

// contentScale is the framebuffer-to-window ratio, so cursor coordinates
// line up with a layout sized from the framebuffer.
func (a *PointerAdapter) contentScale() float32 {
	w, _ := a.window.GetSize()
	fw, _ := a.window.GetFramebufferSize()
	if w == 0 {
		return 1
	}
	return float32(fw) / float32(w)
}

func cursorToLayout(x, y float64, scale float32) clay.Vector2 {
	return clay.Vector2{X: float32(x) * scale, Y: float32(y) * scale}
}

func (a *PointerAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		a.down = true
	case glfw.Release:
		a.down = false
	}
}

func (a *PointerAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.position = cursorToLayout(xpos, ypos, a.contentScale())
}
