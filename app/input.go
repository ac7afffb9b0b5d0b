package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/solarsystem/r3d"
	"github.com/mogaika/solarsystem/utils"
)

var shadingKeys = map[Key]int32{
	'1': 1,
	'2': 2,
}

func (a *App) key(k Key) {
	if mode, ok := shadingKeys[k]; ok {
		a.shadingMode = mode
		a.RequestRedraw()
		return
	}
	if k == KeyEscape {
		a.window.Close()
	}
}

func (a *App) button(b Button, action Action, x, y float64) {
	pressed := action == Press
	switch b {
	case ButtonLeft:
		a.leftHeld = pressed
	case ButtonRight:
		a.rightHeld = pressed
	}
	a.lastX, a.lastY = x, y
}

func (a *App) scroll(ticks float64) {
	if ticks == 0 {
		return
	}
	// wheel away from the user moves the eye closer
	step := -float32(ticks)
	a.camera.InputMouse(r3d.InputZoom, mgl32.Vec2{}, mgl32.Vec2{0, step}, a.cfg.Camera.ZoomScale)
	a.RequestRedraw()
}

func (a *App) motion(x, y float64) {
	defer func() { a.lastX, a.lastY = x, y }()

	var mode r3d.InputMode
	var scale float32
	switch {
	case a.leftHeld:
		mode, scale = r3d.InputRotate, a.cfg.Camera.RotateScale
	case a.rightHeld:
		mode, scale = r3d.InputPan, a.cfg.Camera.PanScale
	default:
		return
	}

	prev, ok := utils.NormalizePointer(a.lastX, a.lastY, a.width, a.height)
	if !ok {
		return
	}
	cur, _ := utils.NormalizePointer(x, y, a.width, a.height)

	a.camera.InputMouse(mode, prev, cur, scale)
	a.RequestRedraw()
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	if !a.accepting() {
		return
	}
	a.renderer.Viewport(w, h)
	a.camera.SetViewport(w, h)
	a.RequestRedraw()
}
