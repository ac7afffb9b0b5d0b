package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type MeshID uint8

const (
	MeshGround MeshID = iota
	MeshCube
)

func (m MeshID) String() string {
	switch m {
	case MeshGround:
		return "ground"
	case MeshCube:
		return "cube"
	default:
		return "unknown"
	}
}

// Object is one drawable instance of the scene.
type Object struct {
	Name   string
	Mesh   MeshID
	Recipe Recipe
}

// Instance is an object evaluated at some moment.
type Instance struct {
	Name  string
	Mesh  MeshID
	Model mgl32.Mat4
}

// Composer evaluates the model matrices of a fixed set of objects.
type Composer struct {
	objects []Object
	byName  map[string]int
}

// New validates the recipes and returns a composer drawing objects in order.
func New(objects []Object) (*Composer, error) {
	c := &Composer{
		objects: make([]Object, len(objects)),
		byName:  make(map[string]int, len(objects)),
	}
	copy(c.objects, objects)

	for i, o := range c.objects {
		if _, dup := c.byName[o.Name]; dup {
			return nil, errors.Errorf("duplicate object %q", o.Name)
		}
		if err := o.Recipe.Validate(); err != nil {
			return nil, errors.Wrapf(err, "object %q", o.Name)
		}
		c.byName[o.Name] = i
	}
	return c, nil
}

func (c *Composer) Objects() []Object { return c.objects }

// Compose returns one instance per object for elapsed time t.
func (c *Composer) Compose(t float32) []Instance {
	return c.ComposeInto(nil, t)
}

// ComposeInto is Compose reusing the dst backing array.
func (c *Composer) ComposeInto(dst []Instance, t float32) []Instance {
	dst = dst[:0]
	for _, o := range c.objects {
		dst = append(dst, Instance{
			Name:  o.Name,
			Mesh:  o.Mesh,
			Model: o.Recipe.Matrix(t),
		})
	}
	return dst
}

// Model returns the model matrix of a named object.
func (c *Composer) Model(name string, t float32) (mgl32.Mat4, bool) {
	i, ok := c.byName[name]
	if !ok {
		return mgl32.Mat4{}, false
	}
	return c.objects[i].Recipe.Matrix(t), true
}
