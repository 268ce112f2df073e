package model

import (
	"image"
	"path/filepath"
	"strings"
)

// SourceImage is a decoded bitmap together with the file it came from.
// A new SourceImage replaces the previous one on every successful load.
type SourceImage struct {
	Path   string
	Bitmap image.Image
	Format string // decoder name reported by image.Decode ("png", "jpeg", ...)
	Size   int64  // on-disk size in bytes
}

// NewSourceImage creates a source image
func NewSourceImage(path string, bitmap image.Image, format string, size int64) *SourceImage {
	return &SourceImage{
		Path:   path,
		Bitmap: bitmap,
		Format: format,
		Size:   size,
	}
}

// Width returns the bitmap width in pixels
func (s *SourceImage) Width() int {
	if s == nil || s.Bitmap == nil {
		return 0
	}
	return s.Bitmap.Bounds().Dx()
}

// Height returns the bitmap height in pixels
func (s *SourceImage) Height() int {
	if s == nil || s.Bitmap == nil {
		return 0
	}
	return s.Bitmap.Bounds().Dy()
}

// BaseName returns the file name without directory and extension
func (s *SourceImage) BaseName() string {
	if s == nil || s.Path == "" {
		return ""
	}
	name := filepath.Base(s.Path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
