package r3d

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/stretchr/testify/assert"
)

type fakeObject struct {
	ok      int32
	infoLog string
	logRead bool
}

func (o *fakeObject) getiv(_, pname uint32, v *int32) {
	switch pname {
	case gl.COMPILE_STATUS, gl.LINK_STATUS:
		*v = o.ok
	case gl.INFO_LOG_LENGTH:
		// length reported by GL includes the terminating zero
		*v = int32(len(o.infoLog) + 1)
	}
}

func (o *fakeObject) getLog(_ uint32, size int32, length *int32, buf *uint8) {
	o.logRead = true
	dst := unsafe.Slice(buf, size)
	n := copy(dst[:size-1], o.infoLog)
	dst[n] = 0
	*length = int32(n)
}

func TestStatusFailureReturnsInfoLog(t *testing.T) {
	for _, pname := range []uint32{gl.COMPILE_STATUS, gl.LINK_STATUS} {
		o := &fakeObject{ok: gl.FALSE, infoLog: "0:12: 'shading_mode' : undeclared identifier"}
		msg, ok := status(1, pname, o.getiv, o.getLog)
		assert.False(t, ok)
		assert.Equal(t, o.infoLog, msg)
	}
}

func TestStatusSuccessSkipsInfoLog(t *testing.T) {
	o := &fakeObject{ok: gl.TRUE, infoLog: "unused"}
	msg, ok := status(1, gl.COMPILE_STATUS, o.getiv, o.getLog)
	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.False(t, o.logRead)
}
