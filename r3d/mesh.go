package r3d

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	Color  mgl32.Vec3
}

var vertexLayout Vertex

const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
)

// Mesh is a static vertex buffer drawn without indices.
type Mesh struct {
	glVAO uint32
	glVBO uint32

	mode  uint32
	count int32
}

func NewCube() (*Mesh, error) {
	m, err := newMesh(gl.TRIANGLES, CubeVertices())
	return m, errors.Wrap(err, "cube")
}

func NewGround(halfExtent, step float32) (*Mesh, error) {
	m, err := newMesh(gl.LINES, GroundVertices(halfExtent, step))
	return m, errors.Wrap(err, "ground")
}

func newMesh(mode uint32, vertices []Vertex) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, errors.New("no vertices")
	}
	m := &Mesh{mode: mode, count: int32(len(vertices))}

	gl.GenVertexArrays(1, &m.glVAO)
	gl.BindVertexArray(m.glVAO)

	gl.GenBuffers(1, &m.glVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.glVBO)

	vertexSize := int(unsafe.Sizeof(vertexLayout))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	for _, a := range []struct {
		index  uint32
		offset uintptr
	}{
		{attribPosition, unsafe.Offsetof(vertexLayout.Pos)},
		{attribNormal, unsafe.Offsetof(vertexLayout.Normal)},
		{attribColor, unsafe.Offsetof(vertexLayout.Color)},
	} {
		gl.EnableVertexAttribArray(a.index)
		gl.VertexAttribPointerWithOffset(a.index, 3, gl.FLOAT, false, int32(vertexSize), a.offset)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		m.Release()
		return nil, errors.Errorf("failed to create vertex buffers: gl error 0x%x", code)
	}
	return m, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.glVAO)
	gl.DrawArrays(m.mode, 0, m.count)
}

func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.glVBO)
	gl.DeleteVertexArrays(1, &m.glVAO)
}

var cubeFaces = []struct {
	normal  mgl32.Vec3
	color   mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.9, 0.2, 0.2}, [4]mgl32.Vec3{
		{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0.2, 0.9, 0.9}, [4]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.2, 0.9, 0.2}, [4]mgl32.Vec3{
		{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0.9, 0.2, 0.9}, [4]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0.2, 0.2, 0.9}, [4]mgl32.Vec3{
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0.9, 0.9, 0.2}, [4]mgl32.Vec3{
		{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
}

// CubeVertices returns a unit cube centered at the origin as a triangle
// list with counter-clockwise front faces.
func CubeVertices() []Vertex {
	vertices := make([]Vertex, 0, len(cubeFaces)*6)
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			vertices = append(vertices, Vertex{Pos: f.corners[i], Normal: f.normal, Color: f.color})
		}
	}
	return vertices
}

var groundColor = mgl32.Vec3{0.6, 0.6, 0.6}

// GroundVertices returns a grid of lines on the y=0 plane covering
// [-halfExtent, halfExtent] on X and Z.
func GroundVertices(halfExtent, step float32) []Vertex {
	if halfExtent <= 0 || step <= 0 {
		return nil
	}
	lines := int(halfExtent/step)*2 + 1
	vertices := make([]Vertex, 0, lines*4)
	for i := 0; i < lines; i++ {
		p := -halfExtent + float32(i)*step
		vertices = append(vertices,
			Vertex{Pos: mgl32.Vec3{p, 0, -halfExtent}, Color: groundColor},
			Vertex{Pos: mgl32.Vec3{p, 0, halfExtent}, Color: groundColor},
			Vertex{Pos: mgl32.Vec3{-halfExtent, 0, p}, Color: groundColor},
			Vertex{Pos: mgl32.Vec3{halfExtent, 0, p}, Color: groundColor},
		)
	}
	return vertices
}
