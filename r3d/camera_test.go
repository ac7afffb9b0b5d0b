package r3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() *Camera {
	c := NewCamera(45, 0.01, 10000)
	c.LookAt(mgl32.Vec3{3, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return c
}

func requireFinite(t *testing.T, m mgl32.Mat4) {
	for i, v := range m {
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "element %d is %v", i, v)
	}
}

func TestRotateWithoutDeltaKeepsView(t *testing.T) {
	c := newTestCamera()
	before := c.GetViewMatrix()

	p := mgl32.Vec2{0.4, 0.6}
	c.InputMouse(InputRotate, p, p, 1)
	assert.Equal(t, before, c.GetViewMatrix())

	c.InputMouse(InputPan, p, p, 1)
	c.InputMouse(InputZoom, p, p, 1)
	assert.Equal(t, before, c.GetViewMatrix())
}

func TestZoomStep(t *testing.T) {
	c := newTestCamera()
	before := c.Distance()
	assert.InDelta(t, math.Sqrt(22), before, 1e-5)

	c.InputMouse(InputZoom, mgl32.Vec2{}, mgl32.Vec2{0, -1}, 0.01)
	assert.InDelta(t, before-0.01, c.Distance(), 1e-4)
	assert.Equal(t, mgl32.Vec3{}, c.Target())

	// direction is kept
	dir := c.Eye().Normalize()
	assert.True(t, dir.ApproxEqualThreshold(mgl32.Vec3{3, 2, 3}.Normalize(), 1e-5))

	c.InputMouse(InputZoom, mgl32.Vec2{}, mgl32.Vec2{0, 1}, 0.01)
	assert.InDelta(t, before, c.Distance(), 1e-4)
}

func TestZoomStopsBeforeTarget(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 100; i++ {
		c.InputMouse(InputZoom, mgl32.Vec2{}, mgl32.Vec2{0, -1}, 1)
	}
	assert.InDelta(t, c.MinDistance, c.Distance(), 1e-5)
	requireFinite(t, c.GetViewMatrix())
}

func TestZoomWithoutMinDistanceKeepsView(t *testing.T) {
	c := newTestCamera()
	c.MinDistance = 0
	for i := 0; i < 1000; i++ {
		c.InputMouse(InputZoom, mgl32.Vec2{}, mgl32.Vec2{0, -1}, 0.01)
	}
	assert.InDelta(t, defaultMinDistance, c.Distance(), 1e-5)
	requireFinite(t, c.GetViewMatrix())
	for _, v := range c.Eye() {
		require.False(t, math.IsNaN(float64(v)))
	}
}

func TestRotateKeepsDistance(t *testing.T) {
	c := newTestCamera()
	dist := c.Distance()
	height := c.Eye().Y()

	c.InputMouse(InputRotate, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.7, 0.5}, 1)
	assert.InDelta(t, dist, c.Distance(), 1e-4)
	assert.InDelta(t, height, c.Eye().Y(), 1e-4, "horizontal drag only changes yaw")
	assert.False(t, c.Eye().ApproxEqualThreshold(mgl32.Vec3{3, 2, 3}, 1e-3))

	c.InputMouse(InputRotate, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.6}, 1)
	assert.InDelta(t, dist, c.Distance(), 1e-4)
	assert.NotEqual(t, height, c.Eye().Y())
}

func TestRotateNeverAlignsWithUp(t *testing.T) {
	for _, dy := range []float32{1, -1} {
		c := newTestCamera()
		for i := 0; i < 50; i++ {
			c.InputMouse(InputRotate, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5 + dy}, 1)
		}
		dir := c.Target().Sub(c.Eye()).Normalize()
		cos := math.Abs(float64(dir.Dot(c.Up())))
		assert.Less(t, cos, math.Cos(minPolarAngle/2), "dy=%v", dy)
		requireFinite(t, c.GetViewMatrix())
	}
}

func TestPan(t *testing.T) {
	c := newTestCamera()
	offset := c.Eye().Sub(c.Target())

	c.InputMouse(InputPan, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.6, 0.4}, 1)
	assert.False(t, c.Target().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4))
	assert.True(t, offset.ApproxEqualThreshold(c.Eye().Sub(c.Target()), 1e-4))

	// moving back returns to the start
	c.InputMouse(InputPan, mgl32.Vec2{0.6, 0.4}, mgl32.Vec2{0.5, 0.5}, 1)
	assert.True(t, c.Target().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4), "%v", c.Target())
}

func TestProjectionAspect(t *testing.T) {
	c := newTestCamera()
	c.SetViewport(800, 600)
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.01, 10000)
	assert.Equal(t, want, c.GetProjectionMatrix())

	c.SetViewport(800, 0)
	assert.InDelta(t, 800.0/600.0, c.Aspect(), 1e-6)
	requireFinite(t, c.GetProjectionMatrix())

	fresh := NewCamera(45, 0.01, 10000)
	fresh.SetViewport(0, 0)
	assert.Equal(t, float32(1), fresh.Aspect())
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := newTestCamera()
	p := c.GetViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -c.Distance(), p.Z(), 1e-4)
}
