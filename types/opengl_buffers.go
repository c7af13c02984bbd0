package types

import (
	"GLTutorial/harness"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// NewBufferObject creates a buffer bound to bufferType and copies data into
// it once with the static usage hint.
func NewBufferObject(bufferType uint32, data []byte) uint32 {

	var vbo uint32

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(bufferType, vbo)

	gl.BufferData(bufferType, len(data), gl.Ptr(data), gl.STATIC_DRAW)

	return vbo

}

func NewVertexArray() uint32 {

	var vao uint32

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	return vao

}

func bufferTarget(target harness.BufferTarget) uint32 {

	if target == harness.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}

	return gl.ARRAY_BUFFER

}

func (d *GLDriver) CreateVertexArray() harness.Handle {
	return harness.Handle(NewVertexArray())
}

func (d *GLDriver) DeleteVertexArray(vao harness.Handle) {

	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)

}

func (d *GLDriver) CreateBuffer(target harness.BufferTarget, data []byte) harness.Handle {
	return harness.Handle(NewBufferObject(bufferTarget(target), data))
}

func (d *GLDriver) DeleteBuffer(buf harness.Handle) {

	id := uint32(buf)
	gl.DeleteBuffers(1, &id)

}
