package compress

import (
	"image"

	"github.com/ytget/image-compressor/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportResult))
	Export(source image.Image, destinationPath string) *model.ExportResult
	ExportFile(sourcePath, destinationPath string) *model.ExportResult
}
