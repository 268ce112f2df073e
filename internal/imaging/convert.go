package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

type opaquer interface {
	Opaque() bool
}

// HasAlpha reports whether any pixel of img is not fully opaque
func HasAlpha(img image.Image) bool {
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// ToRGB returns an opaque copy of img with the alpha channel discarded.
// Colour channels keep their straight (non-premultiplied) values, so a
// transparent red pixel becomes solid red rather than black.
func ToRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := nrgba.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Pix[di+0] = nrgba.Pix[si+0]
			dst.Pix[di+1] = nrgba.Pix[si+1]
			dst.Pix[di+2] = nrgba.Pix[si+2]
			dst.Pix[di+3] = 0xff
			si += 4
			di += 4
		}
	}
	return dst
}
