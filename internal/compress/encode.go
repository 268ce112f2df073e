package compress

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/ytget/image-compressor/internal/imaging"
	"github.com/ytget/image-compressor/internal/model"
)

// encode dispatches to the codec selected by enc
func encode(img image.Image, enc model.Encoding) ([]byte, error) {
	switch enc.Format {
	case model.FormatJPEG:
		return encodeJPEG(img, enc.Quality)
	case model.FormatPNG:
		return encodePNG(img, enc.CompressionLevel, enc.Optimize)
	default:
		return nil, fmt.Errorf("unsupported output format: %q", enc.Format)
	}
}

// encodeJPEG flattens img to RGB and encodes it at the given quality
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = JPEGQuality
	}

	// YCbCr and opaque RGBA input are encoded without a copy
	var rgb image.Image
	switch src := img.(type) {
	case *image.YCbCr:
		rgb = src
	case *image.RGBA:
		if imaging.HasAlpha(src) {
			rgb = imaging.ToRGB(src)
		} else {
			rgb = src
		}
	default:
		rgb = imaging.ToRGB(img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodePNG encodes img as PNG. With optimize set, the best zlib effort is
// used and a lossless palette candidate is tried; the smaller output wins.
func encodePNG(img image.Image, level int, optimize bool) ([]byte, error) {
	enc := &png.Encoder{CompressionLevel: pngCompressionLevel(level, optimize)}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	if !optimize {
		return buf.Bytes(), nil
	}

	paletted, ok := imaging.Palettize(img)
	if !ok {
		return buf.Bytes(), nil
	}

	var pbuf bytes.Buffer
	if err := enc.Encode(&pbuf, paletted); err != nil {
		return nil, err
	}
	if pbuf.Len() < buf.Len() {
		return pbuf.Bytes(), nil
	}
	return buf.Bytes(), nil
}

// pngCompressionLevel maps a zlib level onto the encoder's presets
func pngCompressionLevel(level int, optimize bool) png.CompressionLevel {
	if optimize {
		return png.BestCompression
	}
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level >= 9:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}
