package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/solarsystem/utils"
)

var ErrNonPositiveScale = errors.New("scale factor must be positive")

// Step is one elementary transform of a recipe, evaluated at elapsed time t.
type Step interface {
	Matrix(t float32) mgl32.Mat4
	validate() error
}

// Scale multiplies Factor by 1 + Pulse*|sin(Frequency*t)|.
// With zero Pulse it is a static scale.
type Scale struct {
	Factor    mgl32.Vec3
	Pulse     float32
	Frequency float32
}

func Uniform(s float32) Scale { return Scale{Factor: mgl32.Vec3{s, s, s}} }

func (s Scale) At(t float32) mgl32.Vec3 {
	if s.Pulse == 0 {
		return s.Factor
	}
	return s.Factor.Mul(1 + s.Pulse*utils.AbsSin(s.Frequency*t))
}

func (s Scale) Matrix(t float32) mgl32.Mat4 {
	f := s.At(t)
	return mgl32.Scale3D(f[0], f[1], f[2])
}

func (s Scale) validate() error {
	for _, f := range s.Factor {
		if !(f > 0) {
			return errors.Wrapf(ErrNonPositiveScale, "factor %v", s.Factor)
		}
	}
	if !(s.Pulse >= 0) {
		return errors.Wrapf(ErrNonPositiveScale, "pulse %v", s.Pulse)
	}
	return nil
}

// Rotate turns a full circle every Period seconds around Axis + AxisRate*t.
// The axis is normalized before use; a zero length axis gives no rotation.
type Rotate struct {
	Period   float32
	Axis     mgl32.Vec3
	AxisRate mgl32.Vec3
}

func (r Rotate) AxisAt(t float32) mgl32.Vec3 {
	return r.Axis.Add(r.AxisRate.Mul(t))
}

func (r Rotate) Matrix(t float32) mgl32.Mat4 {
	axis := r.AxisAt(t)
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(utils.PeriodAngle(t, r.Period), axis.Normalize())
}

func (r Rotate) validate() error {
	if r.Period == 0 {
		return errors.New("rotation period must not be zero")
	}
	return nil
}

type Translate struct {
	Offset mgl32.Vec3
}

func (tr Translate) Matrix(float32) mgl32.Mat4 {
	return mgl32.Translate3D(tr.Offset[0], tr.Offset[1], tr.Offset[2])
}

func (Translate) validate() error { return nil }

// Recipe is an ordered transform chain. Steps compose left to right as
// written, so the last step is applied to the vertices first.
type Recipe []Step

func (r Recipe) Matrix(t float32) mgl32.Mat4 {
	m := mgl32.Ident4()
	for _, s := range r {
		m = m.Mul4(s.Matrix(t))
	}
	return m
}

func (r Recipe) Validate() error {
	for i, s := range r {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}
