package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage is returned when data cannot be decoded by any registered codec
var ErrInvalidImage = errors.New("not a valid image")

// Decode opens path and decodes it with the registered image codecs.
// It returns the bitmap, the codec name and the file size in bytes.
func Decode(path string) (image.Image, string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.IsDir() {
		return nil, "", 0, fmt.Errorf("%s is a directory: %w", path, ErrInvalidImage)
	}

	img, format, err := DecodeReader(f)
	if err != nil {
		return nil, "", 0, err
	}
	return img, format, info.Size(), nil
}

// DecodeReader decodes an image from r
func DecodeReader(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, format, nil
}
