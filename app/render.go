package app

// render runs one full pass: clear, camera matrices, one draw per scene
// object, present.
func (a *App) render() {
	a.state = StateRendering
	a.redrawPending = false

	a.renderer.BeginFrame()

	a.renderer.SetProjection(a.camera.GetProjectionMatrix())
	a.renderer.SetView(a.camera.GetViewMatrix())
	a.renderer.SetShadingMode(a.shadingMode)

	a.instances = a.composer.ComposeInto(a.instances, a.clock.Elapsed())
	for _, in := range a.instances {
		a.renderer.Draw(in.Mesh, in.Model)
	}

	a.window.Present()
	a.frames++

	a.state = StateIdle
}
