package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/der-antikeks/nightcity/camera"
)

// Context owns the glfw window and its GL context. All methods must be
// called from the locked main thread.
type Context struct {
	log zerolog.Logger

	width, height int
	window        *glfw.Window
	input         *camera.Input
}

type WindowOptions struct {
	Title         string
	Width, Height int
	VSync         bool
}

// NewContext opens a window with an OpenGL 3.3 core context and routes
// keyboard and cursor events into input.
func NewContext(opts WindowOptions, input *camera.Input, log zerolog.Logger) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}

	c := &Context{
		log:    log,
		width:  opts.Width,
		height: opts.Height,
		window: window,
		input:  input,
	}

	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("opengl context created")

	// callbacks
	window.SetFramebufferSizeCallback(c.onResize)
	window.SetKeyCallback(c.onKey)
	window.SetCursorPosCallback(c.onMouseMove)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	// clearing
	gl.ClearColor(0.05, 0.05, 0.15, 1.0)
	gl.ClearDepth(1)

	// depth
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	// blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// set size
	w, h := window.GetFramebufferSize()
	c.onResize(window, w, h)

	return c, nil
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// Close requests the main loop to end after the current frame
func (c *Context) Close() {
	c.window.SetShouldClose(true)
}

// Update presents the frame and polls window events
func (c *Context) Update() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Aspect is the framebuffer width to height ratio, 1 while minimized
func (c *Context) Aspect() float32 {
	if c.width <= 0 || c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

func (c *Context) Cleanup() {
	c.window.Destroy()
	glfw.Terminate()
}

func (c *Context) onResize(w *glfw.Window, width, height int) {
	c.width, c.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))

	c.log.Debug().Int("width", width).Int("height", height).Msg("resize")
}

func (c *Context) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// unknown keys are reported as -1
	if key < 0 {
		return
	}
	k := camera.Key(key)

	switch action {
	case glfw.Press:
		if k == camera.KeyEscape {
			c.Close()
		}
		c.input.Press(k)
	case glfw.Release:
		c.input.Release(k)
	}
}

func (c *Context) onMouseMove(w *glfw.Window, xpos float64, ypos float64) {
	c.input.MouseMove(xpos, ypos)
}
