package types

import (
	"GLTutorial/harness"

	"github.com/go-gl/gl/v3.2-core/gl"
)

func wrapParam(mode harness.WrapMode) int32 {

	if mode == harness.WrapClampToEdge {
		return gl.CLAMP_TO_EDGE
	}

	return gl.REPEAT

}

func filterParam(mode harness.FilterMode) int32 {

	if mode == harness.FilterNearest {
		return gl.NEAREST
	}

	return gl.LINEAR

}

// NewTexture uploads an RGB image to a 2D texture left bound on the given unit.
func NewTexture(unit int, img *harness.Image, params harness.TextureParams) uint32 {

	var tex uint32

	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// RGB rows are not 4-byte aligned for most widths

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(img.Width), int32(img.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapParam(params.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapParam(params.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterParam(params.Filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterParam(params.Filter))

	return tex

}

func (d *GLDriver) CreateTexture(unit int, img *harness.Image, params harness.TextureParams) harness.Handle {
	return harness.Handle(NewTexture(unit, img, params))
}

func (d *GLDriver) DeleteTexture(tex harness.Handle) {

	id := uint32(tex)
	gl.DeleteTextures(1, &id)

}
