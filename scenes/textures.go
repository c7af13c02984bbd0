package scenes

import (
	"math"
	"time"

	"GLTutorial/harness"

	"github.com/go-gl/mathgl/mgl32"
)

const texturesVertexShader = `#version 150
in vec2 position;
in vec3 color;
in vec2 texcoord;
out vec3 Color;
out vec2 Texcoord;
void main() {
	Texcoord = texcoord;
	Color = color;
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const texturesFragmentShader = `#version 150
in vec3 Color;
in vec2 Texcoord;
out vec4 outColor;
uniform sampler2D texKitten;
uniform sampler2D texPuppy;
uniform float mixFactor;
void main() {
	vec4 colKitten = texture(texKitten, Texcoord);
	vec4 colPuppy = texture(texPuppy, Texcoord);
	outColor = mix(colKitten, colPuppy, mixFactor);
}
`

const (
	KittenSampler = "texKitten"
	PuppySampler  = "texPuppy"
	MixUniform    = "mixFactor"

	DefaultKittenPath = "kitten.png"
	DefaultPuppyPath  = "puppy.png"
)

// MixPeriod is one full oscillation of MixFactor, 500π milliseconds.
var MixPeriod = time.Duration(mixPeriodMillis * float64(time.Millisecond))

var mixPeriodMillis = 500 * math.Pi

type QuadVertex struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
	Texcoord mgl32.Vec2
}

var quadVertices = []QuadVertex{
	{mgl32.Vec2{-0.5, 0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 0}},  // top left
	{mgl32.Vec2{0.5, 0.5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 0}},   // top right
	{mgl32.Vec2{0.5, -0.5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 1}},  // bottom right
	{mgl32.Vec2{-0.5, -0.5}, mgl32.Vec3{1, 1, 1}, mgl32.Vec2{0, 1}}, // bottom left
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

var QuadLayout = harness.NewVertexLayout(
	harness.Attribute{Name: "position", Components: 2},
	harness.Attribute{Name: "color", Components: 3},
	harness.Attribute{Name: "texcoord", Components: 2},
)

// MixFactor oscillates smoothly in [0, 1] as sin(ms/250)/2 + 0.5.
func MixFactor(elapsed time.Duration) float32 {

	ms := float64(elapsed) / float64(time.Millisecond)

	return float32(math.Sin(ms/250)/2 + 0.5)

}

// Textures blends the images at kittenPath and puppyPath across a quad.
func Textures(kittenPath, puppyPath string) *harness.Scene {

	vertices := make([]float32, 0, len(quadVertices)*QuadLayout.FloatsPerVertex())

	for _, v := range quadVertices {
		vertices = append(vertices, v.Position[:]...)
		vertices = append(vertices, v.Color[:]...)
		vertices = append(vertices, v.Texcoord[:]...)
	}

	return &harness.Scene{
		Name:           "textures",
		Vertices:       vertices,
		Layout:         QuadLayout,
		Indices:        append([]uint32(nil), quadIndices...),
		VertexShader:   texturesVertexShader,
		FragmentShader: texturesFragmentShader,
		FragOutput:     "outColor",
		Textures: []harness.TextureSource{
			{Uniform: KittenSampler, Path: kittenPath},
			{Uniform: PuppySampler, Path: puppyPath},
		},
		Uniform: &harness.FrameUniform{Name: MixUniform, Value: MixFactor},
	}

}
