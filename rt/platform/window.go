// Package platform hosts the demo in a GLFW window.
package platform

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/shapes"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	glfw *glfw.Window
}

// NewWindow initializes GLFW and opens a resizable window with no client
// API, ready for a WebGPU surface. Call from the main thread with the OS
// thread locked.
func NewWindow(cfg shapes.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // WebGPU owns the surface
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Window{glfw: win}, nil
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.glfw)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

// BindPointer feeds cursor moves into p in window coordinates.
func (w *Window) BindPointer(p *shapes.Pointer) {
	w.glfw.SetCursorPosCallback(func(win *glfw.Window, xpos, ypos float64) {
		width, height := win.GetSize()
		p.SetCursor(xpos, ypos, width, height)
	})
}

func (w *Window) OnResize(fn func(width, height int)) {
	w.glfw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// CloseOnEscape makes the escape key close the window.
func (w *Window) CloseOnEscape() {
	w.glfw.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
}

func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
