// Package imageio decodes picture files into packed 8-bit RGB for texture upload.
package imageio

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"GLTutorial/harness"
)

// Loader reads images from disk. FlipY stores rows bottom-up, the order GL
// samples them in, for callers whose texcoords assume that.
type Loader struct {
	FlipY bool
}

func (l Loader) Load(path string) (*harness.Image, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	img := ToRGB(src, l.FlipY)

	if img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}

	return img, nil

}

// ToRGB flattens any image onto packed RGB. Alpha is dropped, colour
// channels are kept unpremultiplied.
func ToRGB(src image.Image, flipY bool) *harness.Image {

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	pix := make([]byte, 0, w*h*3)

	for y := 0; y < h; y++ {

		row := y
		if flipY {
			row = h - 1 - y
		}

		line := nrgba.Pix[row*nrgba.Stride : row*nrgba.Stride+w*4]

		for x := 0; x < w; x++ {
			pix = append(pix, line[x*4], line[x*4+1], line[x*4+2])
		}

	}

	return &harness.Image{Width: w, Height: h, Pix: pix}

}
