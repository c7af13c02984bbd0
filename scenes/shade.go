package scenes

import "github.com/go-gl/mathgl/mgl32"

// ShadeGray is what the triangle fragment stage writes for an intensity c.
func ShadeGray(c float32) mgl32.Vec4 {
	return mgl32.Vec4{c, c, c, 1}
}

// ShadeMix is the textures fragment stage: GLSL mix(a, b, f) per component.
func ShadeMix(kitten, puppy mgl32.Vec4, f float32) mgl32.Vec4 {
	return kitten.Mul(1 - f).Add(puppy.Mul(f))
}

// Texel converts 8-bit RGB to the normalized RGBA a sampler returns.
func Texel(r, g, b byte) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}
