package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PeriodAngle returns the rotation angle in radians reached after t seconds
// by something that makes a full turn every period seconds.
func PeriodAngle(t, period float32) float32 {
	if period == 0 {
		return 0
	}
	return mgl32.DegToRad(360.0 * (t / period))
}

// Aspect returns w/h, or fallback when any dimension is not positive.
func Aspect(w, h int, fallback float32) float32 {
	if w <= 0 || h <= 0 {
		return fallback
	}
	return float32(w) / float32(h)
}

// NormalizePointer maps window pixel coordinates to [0,1] with a bottom-up Y.
// ok is false when the window has a zero dimension.
func NormalizePointer(x, y float64, w, h int) (p mgl32.Vec2, ok bool) {
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{
		float32(x / float64(w)),
		float32(1 - y/float64(h)),
	}, true
}

// AbsSin is |sin(x)| in float32
func AbsSin(x float32) float32 {
	return float32(math.Abs(math.Sin(float64(x))))
}

// RotateAround rotates v around a unit axis by angle radians.
func RotateAround(v mgl32.Vec3, angle float32, axis mgl32.Vec3) mgl32.Vec3 {
	if angle == 0 {
		return v
	}
	return mgl32.QuatRotate(angle, axis).Rotate(v)
}
