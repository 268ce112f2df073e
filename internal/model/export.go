package model

import (
	"image"
	"path/filepath"
	"strings"
	"time"
)

// Output formats chosen by the export decision
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

// Encoding is the codec and parameter set used for one export
type Encoding struct {
	Format           string
	Quality          int  // JPEG only, 1..100
	CompressionLevel int  // PNG only, zlib level 0..9
	Optimize         bool // PNG only
}

// ExportRequest is built per save action and never persisted
type ExportRequest struct {
	ID              string
	Source          image.Image
	DestinationPath string
	Extension       string // lowercase, including the leading dot
}

// NewExportRequest derives the lowercase extension from the destination path
func NewExportRequest(id string, source image.Image, destinationPath string) *ExportRequest {
	return &ExportRequest{
		ID:              id,
		Source:          source,
		DestinationPath: destinationPath,
		Extension:       strings.ToLower(filepath.Ext(destinationPath)),
	}
}

// ExportResult reports the outcome of one export
type ExportResult struct {
	ID           string
	Status       ExportStatus
	Path         string
	Encoding     Encoding
	BytesWritten int64
	Err          error
	StartedAt    time.Time
	FinishedAt   time.Time
}

// OK reports whether the destination file was written
func (r *ExportResult) OK() bool {
	return r != nil && r.Status == ExportStatusCompleted && r.Err == nil
}

// Reason returns the human readable failure reason, or "" on success
func (r *ExportResult) Reason() string {
	if r == nil || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
