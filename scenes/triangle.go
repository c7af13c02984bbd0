package scenes

import (
	"GLTutorial/harness"

	"github.com/go-gl/mathgl/mgl32"
)

const triangleVertexShader = `#version 150
in vec2 position;
in float color;
out float Color;
void main() {
	Color = color;
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const triangleFragmentShader = `#version 150
in float Color;
out vec4 outColor;
void main() {
	outColor = vec4(Color, Color, Color, 1.0);
}
`

// GrayVertex is a triangle corner with a single intensity channel.
type GrayVertex struct {
	Position mgl32.Vec2
	Color    float32
}

var triangleVertices = []GrayVertex{
	{mgl32.Vec2{0, 1}, 0.25},
	{mgl32.Vec2{1, -1}, 0.5},
	{mgl32.Vec2{-1, -1}, 0.75},
}

var TriangleLayout = harness.NewVertexLayout(
	harness.Attribute{Name: "position", Components: 2},
	harness.Attribute{Name: "color", Components: 1},
)

func Triangle() *harness.Scene {

	vertices := make([]float32, 0, len(triangleVertices)*TriangleLayout.FloatsPerVertex())

	for _, v := range triangleVertices {
		vertices = append(vertices, v.Position.X(), v.Position.Y(), v.Color)
	}

	return &harness.Scene{
		Name:           "triangle",
		Vertices:       vertices,
		Layout:         TriangleLayout,
		VertexShader:   triangleVertexShader,
		FragmentShader: triangleFragmentShader,
		FragOutput:     "outColor",
	}

}
