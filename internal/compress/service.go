package compress

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/image-compressor/internal/imaging"
	"github.com/ytget/image-compressor/internal/model"
	"github.com/ytget/image-compressor/internal/platform"
)

// Fixed export presets
const (
	JPEGQuality         = 75
	PNGCompressionLevel = 6
	PNGOptimize         = true

	ExportIDPrefix = "export-"
)

// Extensions that select JPEG output; everything else is written as PNG
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

var (
	// ErrNoSource is returned when an export is requested without a decoded image
	ErrNoSource = errors.New("no source image")

	// ErrNoDestination is returned when the destination path is empty
	ErrNoDestination = errors.New("no destination path")

	// ErrSourceUnreadable wraps decode failures of the source file at export time
	ErrSourceUnreadable = errors.New("source image unreadable")
)

// Service re-encodes images to a destination file
type Service struct {
	onUpdate func(*model.ExportResult) // callback for UI updates
	writer   func(path string, data []byte) error
}

// NewService creates a new export service
func NewService() Exporter {
	return &Service{
		writer: platform.WriteFileAtomic,
	}
}

// SetUpdateCallback sets the callback function for export status updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportResult)) {
	s.onUpdate = callback
}

// ChooseEncoding decides the output codec and parameters from the
// destination path's extension.
func ChooseEncoding(destinationPath string) model.Encoding {
	return encodingForExtension(strings.ToLower(filepath.Ext(destinationPath)))
}

// encodingForExtension applies the export policy to a lowercase extension
func encodingForExtension(ext string) model.Encoding {
	if jpegExtensions[ext] {
		return model.Encoding{
			Format:  model.FormatJPEG,
			Quality: JPEGQuality,
		}
	}
	return model.Encoding{
		Format:           model.FormatPNG,
		CompressionLevel: PNGCompressionLevel,
		Optimize:         PNGOptimize,
	}
}

// Export encodes source according to the destination extension and writes
// exactly one file at destinationPath, replacing any existing file.
func (s *Service) Export(source image.Image, destinationPath string) *model.ExportResult {
	req := model.NewExportRequest(generateExportID(), source, destinationPath)
	return s.export(req)
}

// ExportFile decodes sourcePath and exports it. Decode failures are reported
// as ErrSourceUnreadable without touching the destination.
func (s *Service) ExportFile(sourcePath, destinationPath string) *model.ExportResult {
	img, _, _, err := imaging.Decode(sourcePath)
	if err != nil {
		result := &model.ExportResult{
			ID:        generateExportID(),
			Status:    model.ExportStatusPending,
			Path:      destinationPath,
			Encoding:  ChooseEncoding(destinationPath),
			StartedAt: time.Now(),
		}
		s.setResultError(result, fmt.Errorf("%w: %w", ErrSourceUnreadable, err))
		return result
	}
	return s.Export(img, destinationPath)
}

// export performs the actual encode and write
func (s *Service) export(req *model.ExportRequest) *model.ExportResult {
	result := &model.ExportResult{
		ID:        req.ID,
		Status:    model.ExportStatusPending,
		Path:      req.DestinationPath,
		Encoding:  encodingForExtension(req.Extension),
		StartedAt: time.Now(),
	}

	if req.Source == nil {
		s.setResultError(result, ErrNoSource)
		return result
	}
	if strings.TrimSpace(req.DestinationPath) == "" {
		s.setResultError(result, ErrNoDestination)
		return result
	}

	result.Status = model.ExportStatusEncoding
	s.notifyUpdate(result)

	data, err := encode(req.Source, result.Encoding)
	if err != nil {
		s.setResultError(result, fmt.Errorf("error encoding to %s: %w", strings.ToUpper(result.Encoding.Format), err))
		return result
	}

	if err := s.writer(req.DestinationPath, data); err != nil {
		s.setResultError(result, err)
		return result
	}

	result.Status = model.ExportStatusCompleted
	result.BytesWritten = int64(len(data))
	result.FinishedAt = time.Now()
	log.Printf("Export %s completed: %s (%s, %d bytes) in %v",
		result.ID, result.Path, result.Encoding.Format, result.BytesWritten, result.FinishedAt.Sub(result.StartedAt))

	s.notifyUpdate(result)
	return result
}

// setResultError sets an error state for a result
func (s *Service) setResultError(result *model.ExportResult, err error) {
	result.Status = model.ExportStatusError
	result.Err = err
	result.FinishedAt = time.Now()
	log.Printf("Export %s to %s failed: %v", result.ID, result.Path, err)

	s.notifyUpdate(result)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.ExportResult) {
	if s.onUpdate != nil {
		s.onUpdate(result)
	}
}

// generateExportID generates a unique export ID using UUID v7 for time ordering
func generateExportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ExportIDPrefix+"%d", time.Now().UnixNano())
	}
	return ExportIDPrefix + id.String()
}
