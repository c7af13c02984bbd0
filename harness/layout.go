package harness

import (
	"encoding/binary"
	"math"
)

const floatSize = 4

type Attribute struct {
	Name       string
	Components int
}

// AttributePointer places a named attribute inside an interleaved vertex.
type AttributePointer struct {
	Attribute
	Offset int
}

type VertexLayout struct {
	Attributes []AttributePointer
	// Stride is the size of one vertex in bytes.
	Stride int
}

// NewVertexLayout packs float attributes back to back in declaration order.
func NewVertexLayout(attrs ...Attribute) VertexLayout {

	layout := VertexLayout{
		Attributes: make([]AttributePointer, 0, len(attrs)),
	}

	for _, attr := range attrs {

		layout.Attributes = append(layout.Attributes, AttributePointer{
			Attribute: attr,
			Offset:    layout.Stride,
		})

		layout.Stride += attr.Components * floatSize

	}

	return layout

}

// FloatsPerVertex is the number of float32 values in one vertex.
func (l VertexLayout) FloatsPerVertex() int {
	return l.Stride / floatSize
}

func (l VertexLayout) Lookup(name string) (AttributePointer, bool) {

	for _, attr := range l.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}

	return AttributePointer{}, false

}

// float32Bytes packs vertex data in the little-endian layout Driver.CreateBuffer uploads.
func float32Bytes(values []float32) []byte {

	out := make([]byte, len(values)*floatSize)

	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*floatSize:], math.Float32bits(v))
	}

	return out

}

// uint32Bytes packs element indices for an UNSIGNED_INT element buffer.
func uint32Bytes(values []uint32) []byte {

	out := make([]byte, len(values)*4)

	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}

	return out

}
