package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: uint8(128 + x%128)})
		}
	}
	return img
}

func writeFixture(t *testing.T, name string, encode func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatalf("Failed to encode fixture %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestDecode_SupportedFormats(t *testing.T) {
	src := gradient(40, 30)

	tests := []struct {
		name   string
		format string
		encode func(*bytes.Buffer) error
	}{
		{"photo.png", "png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"photo.jpg", "jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) }},
		{"photo.gif", "gif", func(b *bytes.Buffer) error { return gif.Encode(b, src, nil) }},
		{"photo.bmp", "bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"photo.tiff", "tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}

	for _, test := range tests {
		path := writeFixture(t, test.name, test.encode)
		img, format, size, err := Decode(path)
		if err != nil {
			t.Errorf("Decode(%s) failed: %v", test.name, err)
			continue
		}
		if format != test.format {
			t.Errorf("Decode(%s) format = %s, expected %s", test.name, format, test.format)
		}
		if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
			t.Errorf("Decode(%s) bounds = %v, expected 40x30", test.name, img.Bounds())
		}
		if size <= 0 {
			t.Errorf("Decode(%s) size = %d, expected > 0", test.name, size)
		}
	}
}

func TestDecode_TextFileIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("definitely not pixels"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, _, _, err := Decode(path)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got: %v", err)
	}
}

func TestDecode_MissingFile(t *testing.T) {
	_, _, _, err := Decode(filepath.Join(t.TempDir(), "gone.png"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got: %v", err)
	}
}

func TestDecode_Directory(t *testing.T) {
	_, _, _, err := Decode(t.TempDir())
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage for a directory, got: %v", err)
	}
}

func TestHasAlpha(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}
	if HasAlpha(opaque) {
		t.Error("Opaque RGBA should not report alpha")
	}

	if !HasAlpha(gradient(4, 4)) {
		t.Error("Translucent NRGBA should report alpha")
	}

	if HasAlpha(image.NewGray(image.Rect(0, 0, 2, 2))) {
		t.Error("Gray image should not report alpha")
	}
}

func TestToRGB_DropsAlphaKeepsColour(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 10, B: 30, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	rgb := ToRGB(src)
	if HasAlpha(rgb) {
		t.Fatal("ToRGB result should be opaque")
	}

	got := rgb.RGBAAt(0, 0)
	if got != (color.RGBA{R: 200, G: 10, B: 30, A: 255}) {
		t.Errorf("Transparent pixel colour = %v, expected straight colour kept", got)
	}
	got = rgb.RGBAAt(1, 0)
	if got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Opaque pixel colour = %v, expected unchanged", got)
	}
}

func TestToRGB_NonNRGBASource(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 8, 7))
	src.SetGray(6, 6, color.Gray{Y: 77})

	rgb := ToRGB(src)
	if rgb.Bounds() != src.Bounds() {
		t.Errorf("Bounds = %v, expected %v", rgb.Bounds(), src.Bounds())
	}
	if got := rgb.RGBAAt(6, 6); got != (color.RGBA{R: 77, G: 77, B: 77, A: 255}) {
		t.Errorf("Pixel = %v, expected grey 77", got)
	}
}

func TestPalettize(t *testing.T) {
	few := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			few.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y % 4), B: 9, A: 255})
		}
	}

	p, ok := Palettize(few)
	if !ok {
		t.Fatal("Expected image with 64 colours to be palettized")
	}
	if len(p.Palette) != 64 {
		t.Errorf("Expected 64 palette entries, got %d", len(p.Palette))
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := few.NRGBAAt(x, y)
			got := color.NRGBAModel.Convert(p.At(x, y)).(color.NRGBA)
			if got != want {
				t.Fatalf("Pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}

	if _, ok := Palettize(gradient(64, 64)); ok {
		t.Error("Expected image with many colours not to be palettized")
	}

	if _, ok := Palettize(image.NewGray(image.Rect(0, 0, 4, 4))); ok {
		t.Error("Gray images should be left to the grey encoder")
	}

	if _, ok := Palettize(image.NewNRGBA(image.Rectangle{})); ok {
		t.Error("Empty images should not be palettized")
	}
}

func TestThumbnail(t *testing.T) {
	src := gradient(500, 400)

	thumb := Thumbnail(src, 100, 100)
	b := thumb.Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("Thumbnail bounds = %dx%d, expected 100x80", b.Dx(), b.Dy())
	}

	small := gradient(10, 10)
	if Thumbnail(small, 100, 100) != image.Image(small) {
		t.Error("Images that already fit should be returned unchanged")
	}

	if Thumbnail(src, 0, 100) != image.Image(src) {
		t.Error("Zero bounds should return the image unchanged")
	}
}
