package backend

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/solarsystem/app"
	"github.com/mogaika/solarsystem/config"
)

var log = logrus.WithField("component", "backend")

// GLFW owns the window and its OpenGL context. It turns GLFW callbacks into
// application events.
type GLFW struct {
	window *glfw.Window
}

// NewGLFW creates the window and makes its context current. Must be called
// from the main thread.
func NewGLFW(cfg config.Window) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	log.Infof("Created window %dx%d %q", cfg.Width, cfg.Height, cfg.Title)
	return &GLFW{window: window}, nil
}

func (b *GLFW) Destroy() {
	b.window.Destroy()
	glfw.Terminate()
}

func (b *GLFW) Present() { b.window.SwapBuffers() }

func (b *GLFW) Close() { b.window.SetShouldClose(true) }

// pixels converts screen coordinates to framebuffer pixels, which differ on
// high dpi displays.
func (b *GLFW) pixels(x, y float64) (float64, float64) {
	ww, wh := b.window.GetSize()
	fw, fh := b.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}
	return x, y
}

func dispatch(a *app.App, ev app.Event) {
	if err := a.Dispatch(ev); err != nil {
		log.WithError(err).Warnf("Failed to handle %v event", ev.Kind)
	}
}

var mouseButtons = map[glfw.MouseButton]app.Button{
	glfw.MouseButtonLeft:   app.ButtonLeft,
	glfw.MouseButtonRight:  app.ButtonRight,
	glfw.MouseButtonMiddle: app.ButtonMiddle,
}

// Bind registers the window callbacks. Callbacks only run inside
// glfw.PollEvents or glfw.WaitEvents on the main thread.
func (b *GLFW) Bind(a *app.App) {
	b.window.SetRefreshCallback(func(_ *glfw.Window) {
		a.RequestRedraw()
	})

	b.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		dispatch(a, app.Event{Kind: app.EventResize, Width: width, Height: height})
	})

	b.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		dispatch(a, app.Event{Kind: app.EventKey, Key: app.Key(char)})
	})

	b.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			dispatch(a, app.Event{Kind: app.EventKey, Key: app.KeyEscape})
		}
	})

	b.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := mouseButtons[button]
		if !ok {
			return
		}
		ev := app.Event{Kind: app.EventButton, Button: btn, Action: app.Press}
		if action == glfw.Release {
			ev.Action = app.Release
		}
		ev.X, ev.Y = b.pixels(w.GetCursorPos())
		dispatch(a, ev)
	})

	b.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ev := app.Event{Kind: app.EventMotion}
		ev.X, ev.Y = b.pixels(x, y)
		dispatch(a, ev)
	})

	b.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		dispatch(a, app.Event{Kind: app.EventScroll, Scroll: yoff})
	})
}

// Run initializes the application and drives it until the window is closed.
func (b *GLFW) Run(a *app.App) error {
	if err := a.Dispatch(app.Event{Kind: app.EventInit}); err != nil {
		return err
	}

	width, height := b.window.GetFramebufferSize()
	dispatch(a, app.Event{Kind: app.EventResize, Width: width, Height: height})

	for !b.window.ShouldClose() {
		if timeout := a.NextDeadline(); timeout > 0 {
			glfw.WaitEventsTimeout(timeout.Seconds())
		} else {
			glfw.PollEvents()
		}
		a.Pump()
	}

	return a.Dispatch(app.Event{Kind: app.EventShutdown})
}
