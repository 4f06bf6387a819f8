// Example demonstrates hover lookahead in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example lays out a row of buttons. Each button picks its color with
// NextHovered before it is declared; the last one has an explicit id, so its
// lookahead never fires and it relies on Hovered instead.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clay"
	"github.com/go-theft-auto/clay/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "clay example"
)

var (
	colorPanel   = clay.Color{R: 32, G: 40, B: 48, A: 255}
	colorButton  = clay.Color{R: 60, G: 120, B: 216, A: 255}
	colorHovered = clay.Color{R: 106, G: 168, B: 79, A: 255}
	colorPressed = clay.Color{R: 224, G: 102, B: 102, A: 255}
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("clay renderer: %w", err)
	}
	defer renderer.Delete()

	ctx := clay.NewContext(clay.Dimensions{Width: windowWidth, Height: windowHeight})
	pointer := opengl.NewPointerAdapter(window)

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		ctx.SetLayoutDimensions(clay.Dimensions{Width: float32(w), Height: float32(h)})
		p := pointer.Update(ctx)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		declare(ctx, p)

		if err := renderer.Render(ctx); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}

	return nil
}

// declare builds one frame: a toolbar with four buttons.
func declare(ctx *clay.Context, p clay.PointerData) {
	pressed := p.State == clay.PointerPressed || p.State == clay.PointerPressedThisFrame

	ctx.BeginLayout()
	defer ctx.EndLayout()

	toolbar := clay.BoundingBox{X: 20, Y: 20, Width: 560, Height: 80}
	ctx.Element(clay.ElementDeclaration{ID: clay.ID("Toolbar"), Box: toolbar, BackgroundColor: colorPanel}, func() {
		for i := 0; i < 3; i++ {
			col := colorButton
			if ctx.NextHovered() {
				col = colorHovered
				if pressed {
					col = colorPressed
				}
			}
			ctx.Element(clay.ElementDeclaration{Box: buttonBox(toolbar, i), BackgroundColor: col}, nil)
		}

		// Explicit id: lookahead cannot see it, so style it from inside.
		ctx.OpenElement()
		ctx.ConfigureOpenElement(clay.ElementDeclaration{ID: ctx.LocalID("Quit"), Box: buttonBox(toolbar, 3)})
		col := colorButton
		if ctx.Hovered() {
			col = colorHovered
		}
		ctx.Element(clay.ElementDeclaration{Box: buttonBox(toolbar, 3), BackgroundColor: col}, nil)
		ctx.CloseElement()
	})
}

func buttonBox(parent clay.BoundingBox, i int) clay.BoundingBox {
	const w, gap = 125, 10
	return clay.BoundingBox{
		X:      parent.X + gap + float32(i)*(w+gap),
		Y:      parent.Y + gap,
		Width:  w,
		Height: parent.Height - 2*gap,
	}
}
