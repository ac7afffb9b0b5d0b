package r3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/solarsystem/utils"
)

type InputMode uint8

const (
	// orbit around the target keeping the up axis
	InputRotate InputMode = iota
	// move eye and target together in the view plane
	InputPan
	// move the eye along the view direction
	InputZoom
)

func (m InputMode) String() string {
	switch m {
	case InputRotate:
		return "rotate"
	case InputPan:
		return "pan"
	case InputZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

const (
	// radians of orbit per full window of pointer travel
	rotateSensitivity = math.Pi
	// view direction keeps at least this angle to the up axis
	minPolarAngle = 0.01

	// zoom never gets closer than this, whatever MinDistance says
	defaultMinDistance = 0.01
)

type Camera struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	FovY        float32 // degrees
	Near        float32
	Far         float32
	MinDistance float32

	aspect float32
}

func NewCamera(fovY, near, far float32) *Camera {
	return &Camera{
		up:          mgl32.Vec3{0, 1, 0},
		FovY:        fovY,
		Near:        near,
		Far:         far,
		MinDistance: defaultMinDistance,
		aspect:      1,
	}
}

// LookAt sets the absolute pose. eye must differ from target and the view
// direction must not be parallel to up.
func (c *Camera) LookAt(eye, target, up mgl32.Vec3) {
	c.eye = eye
	c.target = target
	c.up = up.Normalize()
}

func (c *Camera) Eye() mgl32.Vec3    { return c.eye }
func (c *Camera) Target() mgl32.Vec3 { return c.target }
func (c *Camera) Up() mgl32.Vec3     { return c.up }
func (c *Camera) Aspect() float32    { return c.aspect }

func (c *Camera) Distance() float32 {
	return c.eye.Sub(c.target).Len()
}

// SetViewport updates the aspect ratio. A zero sized viewport keeps the
// previous aspect.
func (c *Camera) SetViewport(w, h int) {
	c.aspect = utils.Aspect(w, h, c.aspect)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.aspect, c.Near, c.Far)
}

// InputMouse applies pointer movement from prev to cur, both in normalized
// window coordinates. For InputZoom the Y delta is the signed wheel step.
func (c *Camera) InputMouse(mode InputMode, prev, cur mgl32.Vec2, scale float32) {
	d := cur.Sub(prev)
	if d == (mgl32.Vec2{}) || scale == 0 {
		return
	}

	switch mode {
	case InputRotate:
		c.rotate(d.Mul(scale * rotateSensitivity))
	case InputPan:
		c.pan(d.Mul(scale))
	case InputZoom:
		c.zoom(d.Y() * scale)
	}
}

func (c *Camera) basis() (forward, right, up mgl32.Vec3) {
	return frame(c.target.Sub(c.eye), c.up)
}

// frame returns the orthonormal camera axes for a view direction. right is
// zero when dir is parallel to worldUp.
func frame(dir, worldUp mgl32.Vec3) (forward, right, up mgl32.Vec3) {
	forward = dir.Normalize()
	right = forward.Cross(worldUp)
	if right.Len() != 0 {
		right = right.Normalize()
	}
	up = right.Cross(forward)
	return
}

func (c *Camera) rotate(angles mgl32.Vec2) {
	offset := c.eye.Sub(c.target)
	if offset.Len() == 0 {
		return
	}

	offset = utils.RotateAround(offset, -angles.X(), c.up)

	if _, right, _ := frame(offset.Mul(-1), c.up); right.Len() != 0 {
		polar := float32(math.Acos(float64(mgl32.Clamp(offset.Normalize().Dot(c.up), -1, 1))))
		wanted := mgl32.Clamp(polar+angles.Y(), minPolarAngle, math.Pi-minPolarAngle)
		offset = utils.RotateAround(offset, wanted-polar, right)
	}

	c.eye = c.target.Add(offset)
}

func (c *Camera) pan(d mgl32.Vec2) {
	_, right, up := c.basis()
	move := right.Mul(-d.X()).Add(up.Mul(-d.Y())).Mul(c.Distance())
	c.eye = c.eye.Add(move)
	c.target = c.target.Add(move)
}

func (c *Camera) zoom(step float32) {
	forward, _, _ := c.basis()
	dist := c.Distance() + step
	if floor := c.minDistance(); dist < floor {
		dist = floor
	}
	c.eye = c.target.Sub(forward.Mul(dist))
}

func (c *Camera) minDistance() float32 {
	if c.MinDistance < defaultMinDistance {
		return defaultMinDistance
	}
	return c.MinDistance
}
