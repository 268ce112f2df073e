package imaging

import (
	"image"
	"image/color"
)

// MaxPaletteColors is the largest palette a PNG can index
const MaxPaletteColors = 256

// Palettize converts img to a paletted image when it uses at most
// MaxPaletteColors distinct colours. The conversion is lossless; ok is false
// when the image has too many colours or a palette would not help (16-bit
// sources, grey images, images that are already paletted).
func Palettize(img image.Image) (p *image.Paletted, ok bool) {
	switch img.(type) {
	case *image.Paletted, *image.Gray, *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return nil, false
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, false
	}

	index := make(map[color.NRGBA]uint8, MaxPaletteColors)
	palette := make(color.Palette, 0, MaxPaletteColors)
	pix := make([]uint8, b.Dx()*b.Dy())

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			idx, seen := index[c]
			if !seen {
				if len(palette) == MaxPaletteColors {
					return nil, false
				}
				idx = uint8(len(palette))
				index[c] = idx
				palette = append(palette, c)
			}
			pix[i] = idx
			i++
		}
	}

	return &image.Paletted{
		Pix:     pix,
		Stride:  b.Dx(),
		Rect:    b,
		Palette: palette,
	}, true
}
