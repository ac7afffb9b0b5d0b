package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/solarsystem/config"
	"github.com/mogaika/solarsystem/r3d"
	"github.com/mogaika/solarsystem/scene"
	"github.com/mogaika/solarsystem/utils"
)

var log = logrus.WithField("component", "app")

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNotReady          = errors.New("application is not initialized")
)

type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateRendering
	StateIdle
	StateTerminated
)

var stateNames = [...]string{
	StateUninitialized: "uninitialized",
	StateReady:         "ready",
	StateRendering:     "rendering",
	StateIdle:          "idle",
	StateTerminated:    "terminated",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Renderer issues the graphics API calls of a frame.
type Renderer interface {
	Init() error
	Viewport(w, h int)
	BeginFrame()
	SetProjection(m mgl32.Mat4)
	SetView(m mgl32.Mat4)
	SetShadingMode(mode int32)
	Draw(mesh scene.MeshID, model mgl32.Mat4)
	Release()
}

// Window is the part of the windowing system the application drives.
type Window interface {
	Present()
	Close()
}

type Option func(*App)

// WithClock replaces the wall clock used for scheduling ticks.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// App owns all the state of the demo. Every method must be called from the
// thread running the event loop.
type App struct {
	cfg      *config.Config
	renderer Renderer
	window   Window

	state    State
	camera   *r3d.Camera
	composer *scene.Composer
	clock    scene.Clock

	now          func() time.Time
	timers       timerQueue
	tickInterval time.Duration

	width, height int
	shadingMode   int32

	leftHeld, rightHeld bool
	lastX, lastY        float64

	redrawPending bool
	frames        uint64
	instances     []scene.Instance
}

func New(cfg *config.Config, renderer Renderer, window Window, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}

	composer, err := scene.New(scene.SolarSystem())
	if err != nil {
		return nil, errors.Wrap(err, "scene")
	}

	a := &App{
		cfg:          cfg,
		renderer:     renderer,
		window:       window,
		camera:       r3d.NewCamera(cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far),
		composer:     composer,
		now:          time.Now,
		tickInterval: time.Second / time.Duration(cfg.Animation.TickRate),
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		shadingMode:  1,
	}
	a.camera.MinDistance = cfg.Camera.MinDistance
	a.camera.SetViewport(a.width, a.height)

	for _, o := range opts {
		o(a)
	}
	return a, nil
}

func (a *App) State() State                { return a.state }
func (a *App) Camera() *r3d.Camera         { return a.camera }
func (a *App) Elapsed() float32            { return a.clock.Elapsed() }
func (a *App) ShadingMode() int32          { return a.shadingMode }
func (a *App) Frames() uint64              { return a.frames }
func (a *App) Size() (width, height int)   { return a.width, a.height }
func (a *App) TickInterval() time.Duration { return a.tickInterval }

func (a *App) setState(s State) {
	log.Debugf("State %v -> %v", a.state, s)
	a.state = s
}

// accepting reports whether the render loop is set up and still running.
func (a *App) accepting() bool {
	return a.state == StateReady || a.state == StateIdle
}

// RequestRedraw asks for one more render pass. Requests made before the
// pass runs are merged.
func (a *App) RequestRedraw() {
	if a.state == StateTerminated {
		return
	}
	a.redrawPending = true
}

func (a *App) RedrawPending() bool { return a.redrawPending }

// Dispatch handles a single event.
func (a *App) Dispatch(ev Event) error {
	if a.state == StateTerminated {
		return nil
	}

	switch ev.Kind {
	case EventInit:
		return a.init()
	case EventShutdown:
		a.shutdown()
		return nil
	case EventResize:
		a.resize(ev.Width, ev.Height)
		return nil
	}

	if !a.accepting() {
		if ev.Kind == EventRedraw {
			return ErrNotReady
		}
		log.Debugf("Ignoring %v event in state %v", ev.Kind, a.state)
		return nil
	}

	switch ev.Kind {
	case EventRedraw:
		a.render()
	case EventTick:
		a.tick()
	case EventKey:
		a.key(ev.Key)
	case EventButton:
		a.button(ev.Button, ev.Action, ev.X, ev.Y)
	case EventMotion:
		a.motion(ev.X, ev.Y)
	case EventScroll:
		a.scroll(ev.Scroll)
	default:
		log.Warnf("Unknown event %v", ev.Kind)
	}
	return nil
}

// Pump fires due timers and runs at most one render pass for all redraw
// requests collected so far.
func (a *App) Pump() {
	a.timers.Fire(a.now())
	if a.redrawPending && a.accepting() {
		a.render()
	}
}

// NextDeadline is how long the event loop may sleep before calling Pump.
func (a *App) NextDeadline() time.Duration {
	if a.redrawPending {
		return 0
	}
	due, ok := a.timers.Next()
	if !ok {
		return a.tickInterval
	}
	if d := due.Sub(a.now()); d > 0 {
		return d
	}
	return 0
}

func (a *App) init() error {
	if a.state != StateUninitialized {
		return errors.Wrapf(ErrInvalidTransition, "init in state %v", a.state)
	}

	if err := a.renderer.Init(); err != nil {
		return errors.Wrap(err, "renderer init")
	}

	c := a.cfg.Camera
	a.camera.LookAt(mgl32.Vec3(c.Eye), mgl32.Vec3(c.Target), mgl32.Vec3(c.Up))
	a.renderer.Viewport(a.width, a.height)
	a.camera.SetViewport(a.width, a.height)
	utils.LogDump(log, "Camera", a.camera)

	a.setState(StateReady)
	a.timers.After(a.now(), a.tickInterval, a.scheduledTick)
	a.RequestRedraw()
	return nil
}

func (a *App) shutdown() {
	a.timers.Clear()
	a.redrawPending = false
	if a.state != StateUninitialized {
		a.renderer.Release()
	}
	a.setState(StateTerminated)
	log.Infof("Terminated after %d frames", a.frames)
}

func (a *App) scheduledTick() {
	if err := a.Dispatch(Event{Kind: EventTick}); err != nil {
		log.WithError(err).Warn("Tick failed")
	}
}

func (a *App) tick() {
	a.clock.Advance(a.tickInterval)
	a.RequestRedraw()
	a.timers.After(a.now(), a.tickInterval, a.scheduledTick)
}
