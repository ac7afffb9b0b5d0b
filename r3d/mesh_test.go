package r3d

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(36), unsafe.Sizeof(vertexLayout))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(vertexLayout.Normal))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(vertexLayout.Color))
}

func TestCubeWinding(t *testing.T) {
	v := CubeVertices()
	require.Len(t, v, 36)

	for i := 0; i < len(v); i += 3 {
		a, b, c := v[i].Pos, v[i+1].Pos, v[i+2].Pos
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.True(t, n.ApproxEqual(v[i].Normal), "triangle %d faces %v, expected %v", i/3, n, v[i].Normal)

		// outward: the face center lies along the normal
		center := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, center.Dot(v[i].Normal), float32(0))
	}
}

func TestCubeBounds(t *testing.T) {
	for _, v := range CubeVertices() {
		for _, c := range v.Pos {
			assert.Equal(t, float32(0.5), mgl32.Abs(c))
		}
	}
}

func TestGroundVertices(t *testing.T) {
	v := GroundVertices(1, 0.5)
	// 5 lines along each axis, 2 vertices each
	require.Len(t, v, 20)
	for _, g := range v {
		assert.Equal(t, float32(0), g.Pos.Y())
		assert.LessOrEqual(t, mgl32.Abs(g.Pos.X()), float32(1))
		assert.LessOrEqual(t, mgl32.Abs(g.Pos.Z()), float32(1))
	}
	assert.Empty(t, GroundVertices(0, 1))
	assert.Empty(t, GroundVertices(1, 0))
}
